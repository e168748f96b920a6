package email

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"strings"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmails struct {
	resend.EmailsSvc
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeEmails) SendWithContext(_ context.Context, req *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, req)
	return &resend.SendEmailResponse{Id: "em_1"}, nil
}

// sampleData holds variables for every embedded template.
var sampleData = map[Template]map[string]string{
	TemplateWelcome: {
		"Username": "traveller",
	},
}

func TestSampleData_CoversEveryTemplate(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(templateFS, "templates/*.html")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		name := Template(strings.TrimSuffix(path.Base(f), ".html"))
		assert.Contains(t, sampleData, name)
	}
}

func TestRender_AllTemplatesWithSampleData(t *testing.T) {
	t.Parallel()

	for name, data := range sampleData {
		html, err := Render(name, data)
		require.NoError(t, err, name)
		for _, v := range data {
			assert.Contains(t, html, v)
		}
	}
}

func TestRender_EscapesInput(t *testing.T) {
	t.Parallel()

	html, err := Render(TemplateWelcome, map[string]string{"Username": "<script>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	t.Parallel()

	_, err := Render("missing", nil)
	assert.Error(t, err)
}

func TestSendWelcomeEmail(t *testing.T) {
	t.Parallel()

	fake := &fakeEmails{}
	logger := zerolog.Nop()
	c := &Client{emails: fake, logger: &logger}

	require.NoError(t, c.SendWelcomeEmail(context.Background(), "an@example.com", "an"))
	require.Len(t, fake.sent, 1)
	assert.Equal(t, []string{"an@example.com"}, fake.sent[0].To)
	assert.Contains(t, fake.sent[0].Html, "an")

	fake.err = errors.New("rate limited")
	assert.Error(t, c.SendWelcomeEmail(context.Background(), "an@example.com", "an"))
}
