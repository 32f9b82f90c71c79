package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextHelpers(t *testing.T) {
	t.Run(`normalize trims and collapses crlf`, func(t *testing.T) {
		require.Equal(t, "line one\nline two", NormalizeText("  line one\r\nline two \n"))
		require.Equal(t, "", NormalizeText("   "))
	})

	t.Run(`rich text keeps allow-listed tags only`, func(t *testing.T) {
		got := NormalizeRichText("<strong>Great team</strong> <script>alert(1)</script><img src=x onerror=alert(2)>")
		require.Contains(t, got, "<strong>Great team</strong>")
		require.NotContains(t, got, "<script")
		require.NotContains(t, got, "alert(1)")
		require.NotContains(t, got, "onerror")
		require.NotContains(t, got, "<img")
	})

	t.Run(`split drops empty lines`, func(t *testing.T) {
		require.Equal(t, []string{"first", "second"}, SplitLines("first\n\n  second  \n"))
		require.Empty(t, SplitLines(""))
	})

	t.Run(`join skips blank entries`, func(t *testing.T) {
		require.Equal(t, "first\nsecond", JoinLines([]string{" first ", "", "second"}))
		require.Equal(t, "", JoinLines(nil))
	})

	t.Run(`split and join are symmetric`, func(t *testing.T) {
		items := []string{"Install equipment", "Run diagnostics", "File reports"}
		require.Equal(t, items, SplitLines(JoinLines(items)))
	})
}
