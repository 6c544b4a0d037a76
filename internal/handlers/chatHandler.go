package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/llmgate/promptcheck/chat"
	"github.com/llmgate/promptcheck/chatview"
	"github.com/llmgate/promptcheck/internal/utils"
)

const chatPagePath = "/"

// ChatHandler serves the browser chat. All visitors share one in-memory
// session.
type ChatHandler struct {
	session *chat.Session
}

func NewChatHandler(session *chat.Session) *ChatHandler {
	return &ChatHandler{
		session: session,
	}
}

func (h *ChatHandler) ShowChat(c *gin.Context) {
	chatview.ProcessChatPage(c, h.session)
}

func (h *ChatHandler) SubmitMessage(c *gin.Context) {
	content := c.PostForm("content")

	// The session outlives the browser tab, so a dropped request must not
	// cancel the model call.
	err := h.session.Submit(context.WithoutCancel(c.Request.Context()), content)
	switch {
	case errors.Is(err, chat.ErrEmptyInput):
	case errors.Is(err, chat.ErrSubmitInProgress):
		log.Printf("[%s] submission rejected: %v", requestIdFrom(c), err)
	case err != nil:
		log.Printf("[%s] submission failed: %v", requestIdFrom(c), err)
	}

	c.Redirect(http.StatusSeeOther, chatPagePath)
}

func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.ProcessGenericBadRequest(c)
		return
	}

	h.session.Delete(index)
	c.Redirect(http.StatusSeeOther, chatPagePath)
}

func (h *ChatHandler) ClearMessages(c *gin.Context) {
	h.session.Clear()
	c.Redirect(http.StatusSeeOther, chatPagePath)
}
