package usecase_test

import (
	"testing"
	"time"

	"pos/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), want)
	}
}

func assertErrCode(t *testing.T, err error, code string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected *usecase.HTTPError, got %v", err) {
		assert.Equal(t, code, he.Code)
	}
}

// テストで時刻とレシート番号を固定する
type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

type fixedIDGen struct{ id string }

func (g *fixedIDGen) NewID() string { return g.id }
