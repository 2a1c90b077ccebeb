package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Router uses the standard library http.ServeMux (no third-party routing
// dependency).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterListRoutes wires the theater list endpoints, including the
// per-list quick-data, document and email sub-resources.
func (r *Router) RegisterListRoutes(lists *ListHandler, documents *DocumentHandler, email *EmailHandler) {
	r.Handle("/api/v1/lists", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		lists.GetLists(w, req)
	})

	r.Handle("/api/v1/lists/import", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		lists.ImportList(w, req)
	})

	// /api/v1/lists/{id}[/sub-resource...]
	r.Handle("/api/v1/lists/", func(w http.ResponseWriter, req *http.Request) {
		rest := strings.TrimPrefix(req.URL.Path, "/api/v1/lists/")
		parts := strings.Split(rest, "/")
		listID := parts[0]
		if listID == "" || listID == "import" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch {
		case len(parts) == 1:
			switch req.Method {
			case http.MethodGet:
				lists.GetList(w, req, listID)
			case http.MethodDelete:
				lists.DeleteList(w, req, listID)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}

		case len(parts) == 3 && parts[1] == "patients":
			if req.Method != http.MethodPut {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			lists.UpdatePatient(w, req, listID, parts[2])

		case len(parts) == 2 && parts[1] == "quick-data":
			switch req.Method {
			case http.MethodGet:
				lists.ExportQuickData(w, req, listID)
			case http.MethodPost:
				lists.ImportQuickData(w, req, listID)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}

		case len(parts) == 2 && parts[1] == "documents":
			if req.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			documents.Trigger(w, req, listID)

		case len(parts) == 2 && parts[1] == "email":
			switch req.Method {
			case http.MethodGet:
				email.Compose(w, req, listID)
			case http.MethodPost:
				email.Send(w, req, listID)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

// RegisterDirectoryRoutes wires the doctor and hospital directory.
func (r *Router) RegisterDirectoryRoutes(directory *DirectoryHandler) {
	r.Handle("/api/v1/directory/doctors", func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			directory.GetDoctors(w, req)
		case http.MethodPost:
			directory.AddDoctor(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	r.Handle("/api/v1/directory/doctors/", func(w http.ResponseWriter, req *http.Request) {
		id := strings.TrimPrefix(req.URL.Path, "/api/v1/directory/doctors/")
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if req.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		directory.DeleteDoctor(w, req, id)
	})

	r.Handle("/api/v1/directory/hospitals", func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			directory.GetHospitals(w, req)
		case http.MethodPost:
			directory.AddHospital(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	r.Handle("/api/v1/directory/hospitals/", func(w http.ResponseWriter, req *http.Request) {
		id := strings.TrimPrefix(req.URL.Path, "/api/v1/directory/hospitals/")
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if req.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		directory.DeleteHospital(w, req, id)
	})
}

// RegisterSettingsRoutes wires the template settings endpoints.
func (r *Router) RegisterSettingsRoutes(settings *SettingsHandler) {
	r.Handle("/api/v1/settings", func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			settings.GetSettings(w, req)
		case http.MethodPut:
			settings.PutSetting(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}
