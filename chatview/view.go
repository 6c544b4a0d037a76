// Package chatview renders a chat session as a server side HTML page.
package chatview

import (
	_ "embed"
	"errors"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llmgate/promptcheck/chat"
	"github.com/llmgate/promptcheck/models"
)

//go:embed chat.html
var chatPage string

var chatTemplate = template.Must(template.New("chat").Parse(chatPage))

type MessageView struct {
	models.Message
	Index int
}

type PageData struct {
	Messages   []MessageView
	Draft      string
	Submitting bool
	Scroll     bool
	Error      string
}

func NewPageData(session *chat.Session) PageData {
	messages := session.Messages()
	views := make([]MessageView, 0, len(messages))
	for i, message := range messages {
		views = append(views, MessageView{Message: message, Index: i})
	}

	data := PageData{
		Messages:   views,
		Draft:      session.Draft(),
		Submitting: session.Submitting(),
		Scroll:     session.ShouldScroll(),
	}
	if err := session.LastError(); err != nil {
		data.Error = statusLine(err)
	}
	return data
}

// statusLine keeps format problems readable and hides transport details.
func statusLine(err error) string {
	var formatErr *models.FormatError
	if errors.As(err, &formatErr) {
		return formatErr.Reason
	}
	return "The last check failed. Please try again."
}

func Render(w io.Writer, data PageData) error {
	return chatTemplate.Execute(w, data)
}

func ProcessChatPage(c *gin.Context, session *chat.Session) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := Render(c.Writer, NewPageData(session)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
