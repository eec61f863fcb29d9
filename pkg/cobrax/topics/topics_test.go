package topics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTopic(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestScanTopics(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "order-file.md", "# Order file\n\nDirectives.")
	writeTopic(t, dir, "discovery.txt", "How the tool is found.")
	writeTopic(t, dir, "notes.json", "ignored")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))

	tm := New(dir)
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"discovery", "order-file"}, tm.ListTopics())

	topic, exists := tm.GetTopic("order-file")
	require.True(t, exists)
	assert.Equal(t, "# Order file\n\nDirectives.", topic.Content)

	_, exists = tm.GetTopic("notes")
	assert.False(t, exists)
}

func TestScanTopicsCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "custom.rst", "restructured")
	writeTopic(t, dir, "plain.txt", "plain")

	tm := NewWithOptions(dir, Options{Extensions: []string{".rst"}})
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"custom"}, tm.ListTopics())
}

func TestScanTopicsMissingDir(t *testing.T) {
	tm := New("/nonexistent/help")
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())
}

func TestGetTopicFlagStyle(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "option-internalize.txt", "Internalize help")
	writeTopic(t, dir, "ordering.txt", "Ordering help")

	tm := New(dir)
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input  string
		want   string
		exists bool
	}{
		{"ordering", "ordering", true},
		{"option-internalize", "option-internalize", true},
		{"internalize", "option-internalize", true},
		{"--internalize", "option-internalize", true},
		{"-internalize", "option-internalize", true},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.want, topic.Name)
			}
		})
	}
}

func TestInitialize(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "ordering.txt", "All about the order file.")

	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "merge",
		Short: "Merge things",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	require.NoError(t, Initialize(rootCmd, dir))

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", helpCmd.Name())
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
}

func TestRenderPicksUpRenderer(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "ordering.md", "content")

	tm := NewWithOptions(dir, Options{Renderer: upperRenderer{}})
	require.NoError(t, tm.scanTopics())

	topic, exists := tm.GetTopic("ordering")
	require.True(t, exists)
	assert.Equal(t, "CONTENT", tm.render(topic))
}

type upperRenderer struct{}

func (upperRenderer) Render(content string, format string) string {
	out := make([]byte, len(content))
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
