package httpserver

import (
	"net/http"

	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/services"
)

const msgInvalidBody = "Invalid request body"

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createBlogRequest struct {
	Title            string `json:"title"`
	Content          string `json:"content"`
	AssignedEditorID *int64 `json:"assignedEditorId"`
}

type assignEditorRequest struct {
	AssignedEditorID *int64 `json:"assignedEditorId"`
}

type editBlogRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type postCommentRequest struct {
	Comment string `json:"comment"`
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

func (s *HTTPServer) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeBody(r, &req); err != nil {
		writeText(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := s.users.Signup(r.Context(), services.SignupRequest{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		s.writeError(w, r, "creating the user", err)
		return
	}

	s.logger.Info(r.Context(), "User created", "user_id", user.UserID, "role", user.Role)
	writeText(w, http.StatusOK, "User created successfully")
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeText(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, "logging in", err)
		return
	}
	writeText(w, http.StatusOK, token)
}

func (s *HTTPServer) listBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := s.blogs.List(r.Context())
	if err != nil {
		s.writeError(w, r, "fetching blogs", err)
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

func (s *HTTPServer) getBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := s.blogs.Get(r.Context(), pathID(r, "blogId"))
	if err != nil {
		s.writeError(w, r, "fetching the blog", err)
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

func (s *HTTPServer) createBlog(w http.ResponseWriter, r *http.Request) {
	var req createBlogRequest
	if err := decodeBody(r, &req); err != nil {
		writeText(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	blog, err := s.blogs.Create(r.Context(), services.CreateBlogRequest{
		Title:            req.Title,
		Content:          req.Content,
		AssignedEditorID: req.AssignedEditorID,
	})
	if err != nil {
		s.writeError(w, r, "creating the blog", err)
		return
	}

	s.logger.Info(r.Context(), "Blog created", "blog_id", blog.BlogID)
	writeText(w, http.StatusOK, "Blog created successfully")
}

func (s *HTTPServer) assignEditor(w http.ResponseWriter, r *http.Request) {
	var req assignEditorRequest
	if err := decodeBody(r, &req); err != nil {
		writeText(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := s.blogs.AssignEditor(r.Context(), pathID(r, "blogId"), req.AssignedEditorID); err != nil {
		s.writeError(w, r, "assigning the editor", err)
		return
	}
	writeText(w, http.StatusOK, "Editor assigned successfully")
}

func (s *HTTPServer) editBlog(w http.ResponseWriter, r *http.Request) {
	var req editBlogRequest
	if err := decodeBody(r, &req); err != nil {
		writeText(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	p, _ := PrincipalFrom(r.Context())
	patch := models.BlogPatch{Title: req.Title, Content: req.Content}
	if _, err := s.blogs.Edit(r.Context(), p, pathID(r, "blogId"), patch); err != nil {
		s.writeError(w, r, "updating the blog", err)
		return
	}
	writeText(w, http.StatusOK, "Blog updated successfully")
}

func (s *HTTPServer) deleteBlog(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	blogID := pathID(r, "blogId")
	if err := s.blogs.Delete(r.Context(), p, blogID); err != nil {
		s.writeError(w, r, "deleting the blog", err)
		return
	}

	s.logger.Info(r.Context(), "Blog deleted", "blog_id", blogID, "user_id", p.UserID)
	writeText(w, http.StatusOK, "Blog deleted successfully")
}

func (s *HTTPServer) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := s.comments.List(r.Context(), pathID(r, "blogId"))
	if err != nil {
		s.writeError(w, r, "fetching comments", err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *HTTPServer) postComment(w http.ResponseWriter, r *http.Request) {
	var req postCommentRequest
	if err := decodeBody(r, &req); err != nil {
		writeText(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	p, _ := PrincipalFrom(r.Context())
	if _, err := s.comments.Post(r.Context(), p, pathID(r, "blogId"), req.Comment); err != nil {
		s.writeError(w, r, "posting the comment", err)
		return
	}
	writeText(w, http.StatusOK, "Comment posted successfully")
}

func (s *HTTPServer) deleteComment(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	if err := s.comments.Delete(r.Context(), p, pathID(r, "blogId"), pathID(r, "commentId")); err != nil {
		s.writeError(w, r, "deleting the comment", err)
		return
	}
	writeText(w, http.StatusOK, "Comment deleted successfully")
}
