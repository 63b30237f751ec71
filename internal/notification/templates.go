// internal/notification/templates.go

package notifications

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

// Body templates per notification type. Mentions carry their own text.
var bodyTemplates = map[state.NotificationType]string{
	state.NotificationLike:    "liked your post.",
	state.NotificationFollow:  "started following you.",
	state.NotificationComment: "commented: {{.Text}}",
	state.NotificationMention: "{{.Text}}",
}

const thumbnailTemplate = "https://picsum.photos/seed/{{.PostID}}/50/50"

// TemplateService renders notification sentences
type TemplateService struct {
	bodies    map[state.NotificationType]*template.Template
	thumbnail *template.Template
}

func NewTemplateService() (*TemplateService, error) {
	s := &TemplateService{bodies: make(map[state.NotificationType]*template.Template, len(bodyTemplates))}
	for kind, text := range bodyTemplates {
		tmpl, err := template.New(string(kind)).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", kind, err)
		}
		s.bodies[kind] = tmpl
	}

	thumb, err := template.New("thumbnail").Parse(thumbnailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse thumbnail template: %w", err)
	}
	s.thumbnail = thumb
	return s, nil
}

// RenderBody returns the sentence for n. Unknown types render as "".
func (s *TemplateService) RenderBody(n state.Notification) (string, error) {
	tmpl, ok := s.bodies[n.Type]
	if !ok {
		return "", nil
	}
	return s.render(tmpl, n)
}

// RenderThumbnail returns the post preview URL, or "" for follows.
func (s *TemplateService) RenderThumbnail(n state.Notification) (string, error) {
	if n.Type == state.NotificationFollow {
		return "", nil
	}
	return s.render(s.thumbnail, n)
}

func (s *TemplateService) render(tmpl *template.Template, n state.Notification) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
