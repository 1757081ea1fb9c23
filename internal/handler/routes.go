package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Routes собирает маршрутизатор. Публичные маршруты регистрируются
// раньше защищённого subrouter-а, всё под /api кроме /api/auth
// проходит через AuthGuard.
func (h *Handlers) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware, CORSMiddleware)

	r.HandleFunc("/", HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(AuthGuard(h.TokenService))

	// profile
	api.HandleFunc("/me", h.GetCurrentUser).Methods(http.MethodGet)
	api.HandleFunc("/me/username", h.UpdateUsername).Methods(http.MethodPut)
	api.HandleFunc("/me/avatar", h.UpdateAvatar).Methods(http.MethodPut)

	// categories
	api.HandleFunc("/categories", h.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories", h.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id:[0-9]+}", h.GetCategory).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id:[0-9]+}", h.UpdateCategory).Methods(http.MethodPut)
	api.HandleFunc("/categories/{id:[0-9]+}", h.DeleteCategory).Methods(http.MethodDelete)

	// subcategories
	api.HandleFunc("/subcategories", h.CreateSubcategory).Methods(http.MethodPost)
	api.HandleFunc("/subcategories", h.GetSubcategories).Methods(http.MethodGet)
	api.HandleFunc("/subcategories/category/{id:[0-9]+}", h.GetSubcategoriesByCategory).Methods(http.MethodGet)
	api.HandleFunc("/subcategories/{id:[0-9]+}", h.GetSubcategory).Methods(http.MethodGet)
	api.HandleFunc("/subcategories/{id:[0-9]+}", h.UpdateSubcategory).Methods(http.MethodPut)
	api.HandleFunc("/subcategories/{id:[0-9]+}", h.DeleteSubcategory).Methods(http.MethodDelete)

	// tags
	api.HandleFunc("/tags", h.GetTags).Methods(http.MethodGet)
	api.HandleFunc("/tags", h.CreateTag).Methods(http.MethodPost)
	api.HandleFunc("/tags/{id:[0-9]+}", h.DeleteTag).Methods(http.MethodDelete)

	// posts
	api.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/mine", h.GetMyPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/saved", h.GetSavedPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/search", h.SearchPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id:[0-9]+}", h.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id:[0-9]+}", h.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id:[0-9]+}/like", h.LikePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}/save", h.SavePost).Methods(http.MethodPost)

	// comments
	api.HandleFunc("/posts/{id:[0-9]+}/comments", h.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id:[0-9]+}/comments", h.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id:[0-9]+}", h.DeleteComment).Methods(http.MethodDelete)

	return r
}
