package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maintsvc/internal/app/dto"
	"maintsvc/internal/domain/authz"
	"maintsvc/internal/domain/user"
)

func toUserDTO(u user.User) dto.User {
	return dto.User{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}

func (h *Handler) UserRegister(c *gin.Context) {
	if !h.authorize(c, authz.ActionUserRegister, "users") {
		return
	}

	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.Username == "" || body.Password == "" {
		h.badRequest(c, "username and password are required")
		return
	}
	if body.Role == "" {
		body.Role = string(user.RoleRequester)
	}

	u, err := h.UserSvc.Register(c.Request.Context(), body.Username, body.Email, body.Password, user.Role(body.Role))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": toUserDTO(u)})
}

func (h *Handler) UserSetRole(c *gin.Context) {
	if !h.authorize(c, authz.ActionUserSetRole, "users") {
		return
	}

	var body struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.UserID == "" || body.Role == "" {
		h.badRequest(c, "user_id and role are required")
		return
	}

	u, err := h.UserSvc.SetRole(c.Request.Context(), body.UserID, user.Role(body.Role))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserDTO(u)})
}

func (h *Handler) UserChangePassword(c *gin.Context) {
	var body struct {
		UserID      string `json:"user_id"`
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.UserID == "" {
		h.badRequest(c, "user_id is required")
		return
	}

	// a user may only change their own password; admins may change any
	sub := subjectFrom(c)
	if sub.UserID != body.UserID && sub.Role != user.RoleAdmin {
		h.writeError(c, h.Policy.Authorize(sub, authz.ActionUserSetRole, "users"))
		return
	}

	if err := h.UserSvc.ChangePassword(c.Request.Context(), body.UserID, body.OldPassword, body.NewPassword); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) UserLogin(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}

	u, err := h.UserSvc.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserDTO(u)})
}

func (h *Handler) UserLogout(c *gin.Context) {
	var body struct {
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.UserID == "" {
		h.badRequest(c, "user_id is required")
		return
	}

	if err := h.UserSvc.Logout(c.Request.Context(), body.UserID); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) UserList(c *gin.Context) {
	if !h.authorize(c, authz.ActionUserList, "users") {
		return
	}

	list, err := h.UserSvc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	users := make([]dto.User, 0, len(list))
	for _, u := range list {
		users = append(users, toUserDTO(u))
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
