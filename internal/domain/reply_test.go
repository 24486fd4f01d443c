package domain

import (
	"testing"

	internal_errors "github.com/goforum-dev/goforum/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReplyCreationData(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		data, err := NewReplyCreationData(Payload{"replyContent": "content example"}, "user-123", "comment-123")
		require.NoError(t, err)
		assert.Equal(t, ReplyCreationData{Content: "content example", Owner: "user-123", Comment: "comment-123"}, data)
	})

	t.Run("empty owner or comment is incomplete", func(t *testing.T) {
		_, err := NewReplyCreationData(Payload{"replyContent": "x"}, "", "comment-123")
		assert.True(t, internal_errors.Is[*internal_errors.IncompletePayload](err))

		_, err = NewReplyCreationData(Payload{"replyContent": "x"}, "user-123", "")
		assert.True(t, internal_errors.Is[*internal_errors.IncompletePayload](err))
	})

	t.Run("missing content is incomplete", func(t *testing.T) {
		_, err := NewReplyCreationData(nil, "user-123", "comment-123")
		assert.True(t, internal_errors.Is[*internal_errors.IncompletePayload](err))
	})

	t.Run("non-string content fails", func(t *testing.T) {
		_, err := NewReplyCreationData(Payload{"replyContent": []any{}}, "user-123", "comment-123")
		assert.True(t, internal_errors.Is[*internal_errors.InvalidType](err))
	})
}

func TestThreadReplyRedacted(t *testing.T) {
	reply := ThreadReply{Id: "reply-123", Username: "user123", Content: "original content"}

	assert.Equal(t, "original content", reply.Redacted().Content)

	reply.IsDeleted = true
	assert.Equal(t, DeletedReplyMask, reply.Redacted().Content)
}
