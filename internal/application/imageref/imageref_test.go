package imageref

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	url string
	err error
}

func (s stubResolver) ImageURL(context.Context, string) (string, error) { return s.url, s.err }

func TestResolve(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "k.jpg", Resolve(ctx, nil, "k.jpg"))
	assert.Equal(t, "", Resolve(ctx, stubResolver{url: "https://signed"}, ""))
	assert.Equal(t, "https://signed", Resolve(ctx, stubResolver{url: "https://signed"}, "k.jpg"))
	assert.Equal(t, "k.jpg", Resolve(ctx, stubResolver{err: errors.New("no creds")}, "k.jpg"))
}
