package handlers

import (
	"net/http"
	"strconv"

	"artcenter/internal/policy"
	"artcenter/internal/repository"
)

const postsPerPage = 20

// pageOffset - номер страницы из query (?page=N, с нуля) в offset
func pageOffset(r *http.Request) int {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 0 {
		page = 0
	}
	return page * postsPerPage
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	posts, err := h.PostRepo.GetFeed(r.Context(), identity.ID, postsPerPage, pageOffset(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if len(posts) == 0 {
		WriteError(w, "Публикации не найдены", http.StatusNotFound)
		return
	}

	writeJSON(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id публикации", http.StatusBadRequest)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID, identity.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, post, http.StatusOK)
}

func (h *Handlers) GetMyPosts(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	posts, err := h.PostRepo.GetByAuthor(r.Context(), identity.ID, postsPerPage, pageOffset(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if len(posts) == 0 {
		WriteError(w, "У вас нет публикаций", http.StatusNotFound)
		return
	}

	writeJSON(w, posts, http.StatusOK)
}

func (h *Handlers) GetSavedPosts(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	posts, err := h.PostRepo.GetSaved(r.Context(), identity.ID, postsPerPage, pageOffset(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if len(posts) == 0 {
		WriteError(w, "У вас нет сохранённых публикаций", http.StatusNotFound)
		return
	}

	writeJSON(w, posts, http.StatusOK)
}

func (h *Handlers) SearchPosts(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		WriteError(w, "Необходимо указать поисковый запрос", http.StatusBadRequest)
		return
	}

	posts, err := h.PostRepo.Search(r.Context(), identity.ID, query, postsPerPage, pageOffset(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if len(posts) == 0 {
		WriteError(w, "По запросу ничего не найдено", http.StatusNotFound)
		return
	}

	writeJSON(w, posts, http.StatusOK)
}

// CreatePost - multipart: файл изображения обязателен,
// описание и тег опциональны. Публикуют только обычные пользователи.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if !policy.CanPublish(identity) {
		WriteError(w, "Администратор не публикует контент", http.StatusForbidden)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Не предоставлено изображение", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var description *string
	if v := r.FormValue("description"); v != "" {
		description = &v
	}

	var tagID *int64
	if v := r.FormValue("tagId"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			WriteError(w, "Неверный id тега", http.StatusBadRequest)
			return
		}
		tagID = &parsed
	}

	post, err := h.PostService.CreatePost(r.Context(), identity.ID, description, tagID, header.Filename, file, header.Size)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, post, http.StatusCreated)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id публикации", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), identity, postID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, map[string]string{"msg": "Публикация удалена"}, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	h.togglePost(w, r, repository.EngagementLike, "Лайк поставлен", "Лайк убран")
}

func (h *Handlers) SavePost(w http.ResponseWriter, r *http.Request) {
	h.togglePost(w, r, repository.EngagementSave, "Публикация сохранена", "Сохранение убрано")
}

func (h *Handlers) togglePost(w http.ResponseWriter, r *http.Request, kind repository.EngagementKind, onMsg, offMsg string) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id публикации", http.StatusBadRequest)
		return
	}

	result, err := h.EngagementService.Toggle(r.Context(), kind, identity.ID, postID)
	if err != nil {
		// несуществующий пост - клиентская ошибка, не сбой сервера
		writeDomainError(w, err)
		return
	}

	if result.Created {
		writeJSON(w, map[string]string{"msg": onMsg}, http.StatusCreated)
		return
	}

	writeJSON(w, map[string]string{"msg": offMsg}, http.StatusOK)
}
