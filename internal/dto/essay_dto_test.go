package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEssayRequestValidate(t *testing.T) {
	wc := 2
	tests := []struct {
		name    string
		req     CreateEssayRequest
		wantErr string
	}{
		{
			name: "valid with explicit word count",
			req:  CreateEssayRequest{Title: "t", Content: "a b c", Prompt: "p", WordCount: &wc},
		},
		{
			name:    "missing title",
			req:     CreateEssayRequest{Content: "c", Prompt: "p"},
			wantErr: "title is required",
		},
		{
			name:    "missing content",
			req:     CreateEssayRequest{Title: "t", Prompt: "p"},
			wantErr: "content is required",
		},
		{
			name:    "missing prompt",
			req:     CreateEssayRequest{Title: "t", Content: "c"},
			wantErr: "prompt is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insert, err := tt.req.Validate()
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, insert.WordCount)
		})
	}
}

func TestCreateEssayRequestDerivesWordCount(t *testing.T) {
	req := CreateEssayRequest{Title: "t", Content: "one two  three", Prompt: "p"}
	insert, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, 3, insert.WordCount)
}

func TestCreateEssayRequestRejectsNegativeCounts(t *testing.T) {
	neg := -1
	_, err := (&CreateEssayRequest{Title: "t", Content: "c", Prompt: "p", WordCount: &neg}).Validate()
	assert.Error(t, err)

	_, err = (&CreateEssayRequest{Title: "t", Content: "c", Prompt: "p", TimeSpent: &neg}).Validate()
	assert.Error(t, err)
}

func TestUpdateEssayRequestValidate(t *testing.T) {
	title := "new title"
	update, err := (&UpdateEssayRequest{Title: &title}).Validate()
	require.NoError(t, err)
	require.NotNil(t, update.Title)
	assert.Equal(t, "new title", *update.Title)
	assert.Nil(t, update.Content)
	assert.Nil(t, update.WordCount)

	empty := ""
	_, err = (&UpdateEssayRequest{Title: &empty}).Validate()
	assert.Error(t, err)

	neg := -5
	_, err = (&UpdateEssayRequest{TimeSpent: &neg}).Validate()
	assert.Error(t, err)
}
