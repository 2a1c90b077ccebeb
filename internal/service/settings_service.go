package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"theaterlist/internal/store"
)

// Setting keys as stored in the KV.
const (
	SettingEmailHeader = "settings:emailHeaderTemplate"
	SettingEmailBody   = "settings:emailBodyTemplate"
	SettingAIPrompt    = "settings:aiPrompt"
)

// DefaultEmailHeader is the out-of-the-box subject template. [date] and
// [hospital] are filled in per list.
const DefaultEmailHeader = "Dr Riaan Combrinck billing notes for [date] at [hospital]"

// DefaultEmailBody is the out-of-the-box body template. [doctor name] and
// [hospital name] are filled in per list. The trailing tabs are part of the
// template the billing office expects.
const DefaultEmailBody = "Good afternoon Ryan\t\t\t\n\n\t\t\t\nHere are my notes for billing for the following patients\t\t\t\n\t\t\t\nThe procedures were done by [doctor name] at the [hospital name]"

// DefaultAIPrompt is the transcription prompt handed to whoever turns a
// faxed or photographed theater list into the import spreadsheet.
const DefaultAIPrompt = `I’m going to send a surgical theatre list with patient and procedure details. The data is quite jumbled. I want you to create a table in the chat, by sequentially taking data from the information I send you. First: Create column one with all the patients’ names in the order that they are presented. Keep the "Mr" or "Mrs" or whatever. Second: Create column two with all the telephone numbers in the order that they are presented. Third: Create column three with all the dates of birth in the order that they are presented (format dd/mm/yyyy). Fourth: Create column four with all the emails in the order that they are presented. Fifth: Create column five with all the ID numbers in the order that they are presented. Sixth: Create column six with all the ages in the order that they are presented. Seventh: Create column seven with all the Medical aid names in the order that they are presented. Eighth: Create column eight with all the Medical aid numbers in the order that they are presented. Ninth: Create column nine with all the Dependant numbers in the order that they are presented (put a ' at the front, so excel sees it as text). Tenth: Create column ten with all the Genders in the order that they are presented. Eleventh: Create column eleven with all the Auth numbers in the order that they are presented. Twelfth: Create column twelve with all the ICD 10 codes in the order that they are presented. Thirteenth: Create column thirteen with all the procedure codes in the order that they are presented(these numbers are found under the heading “codes”, but I want only the four digit RPL codes starting with a 2 or 3, I absolutely do not want the five digit codes. Please try to be meticulous, and not add any codes that are not in the source material). also state the amount of each code, for ex "3287 x 10, 2802 x 4, 0661 x 2". Lastly, add column fourteen with the procedure being done. This information has things like “L1 – S1”, or “C3 – C7”. I want you to take the whole thing, and make a short summary. If it says the word “radiofrequency” or “rhizotomy”, simply say “RF”. If it only has the words “blocks”, then say “blocks”. And then, if it says something like “dorsal root ganglion”, say “DRG”, if there is "Axillary and suprascapular", say "AxSS" and the side "LT/RT/BIL", if it says anything "Occipital" (like greater occipital), simply say "GONS", if it says "Genicular", say "Gen" and the side "LT/RT/BIL", if it says "Obturator and femoral", simply put "ObtFem" and the side "LT/RT/BIL". So for example, “L1 -S1;C3-C7 Dorsal medial branch blocks and pulsed radiofrequency neuromodulation (Bilaterally) and Nerve Root block and Dorsal root ganglion stimulation C4 - C6 (RT) and C6 (LT) and Obturator and femoral nerve block (LT)” will become “ L1-S1, C3-C7 RF, C4-C6 DRG RT, C6 DRG LT, ObtFem LT”. If a patient is getting an RF in any part, you can assume that all other parts are also RF, so you dont need to put "blocks" and "RF", you can just put "RF" for those parts. If it’s confusing, simply state the whole string as is.`

var settingDefaults = map[string]string{
	SettingEmailHeader: DefaultEmailHeader,
	SettingEmailBody:   DefaultEmailBody,
	SettingAIPrompt:    DefaultAIPrompt,
}

// SettingsService keeps the practice's editable templates. A key that was
// never written reads back as its default, so fresh deployments behave the
// same as long-running ones.
type SettingsService struct {
	kv     store.KV
	logger *zap.Logger
}

func NewSettingsService(kv store.KV, logger *zap.Logger) *SettingsService {
	return &SettingsService{kv: kv, logger: logger}
}

func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	def, ok := settingDefaults[key]
	if !ok {
		return "", fmt.Errorf("unknown setting %q", key)
	}
	val, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return def, nil
		}
		return "", fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return val, nil
}

func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	if _, ok := settingDefaults[key]; !ok {
		return fmt.Errorf("unknown setting %q", key)
	}
	if err := s.kv.Set(ctx, key, value, 0); err != nil {
		return fmt.Errorf("failed to store setting %q: %w", key, err)
	}
	s.logger.Info("Updated setting", zap.String("key", key))
	return nil
}

// GetAll resolves every known setting, defaults filled in.
func (s *SettingsService) GetAll(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(settingDefaults))
	for key := range settingDefaults {
		val, err := s.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		out[key] = val
	}
	return out, nil
}
