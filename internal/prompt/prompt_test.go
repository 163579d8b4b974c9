package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskEntry(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  My Inbox  \n Work \n"), &out)

	ans, err := p.AskEntry()
	require.NoError(t, err)
	assert.Equal(t, "My Inbox", ans.Title)
	assert.Equal(t, "work", ans.Category)
	assert.Equal(t, "Enter tab title: Category (pmb / work / other): ", out.String())
}

func TestAskLastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("Inbox\nother"), &bytes.Buffer{})

	ans, err := p.AskEntry()
	require.NoError(t, err)
	assert.Equal(t, "Inbox", ans.Title)
	assert.Equal(t, "other", ans.Category)
}

func TestAskEntryNoInput(t *testing.T) {
	p := New(strings.NewReader("Inbox\n"), &bytes.Buffer{})

	_, err := p.AskEntry()
	assert.True(t, errors.Is(err, ErrNoInput), "got %v", err)
}

func TestAskEmptyAnswer(t *testing.T) {
	p := New(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := p.Ask("? ")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
