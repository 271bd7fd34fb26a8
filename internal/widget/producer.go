package widget

import "context"

// Reply is one bot turn: the text to display plus any quick-reply options
// attached to it.
type Reply struct {
	Text         string
	QuickReplies []QuickReplyOption
}

// Producer supplies the bot side of the conversation. Implementations may
// be a local canned script or a remote call; the controller treats both the
// same way. NextReply is invoked off the caller's goroutine when the typing
// delay expires, with a bounded context.
type Producer interface {
	NextReply(ctx context.Context, userText string) (Reply, error)
}

// ProducerFunc adapts a plain function to the Producer interface.
type ProducerFunc func(ctx context.Context, userText string) (Reply, error)

func (f ProducerFunc) NextReply(ctx context.Context, userText string) (Reply, error) {
	return f(ctx, userText)
}
