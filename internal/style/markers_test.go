package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarker_Bullet(t *testing.T) {
	assert.Equal(t, "•", Marker(ListBullet, 0))
	assert.Equal(t, "•", Marker(ListBullet, 4))
}

func TestMarker_NumberIsOneBased(t *testing.T) {
	assert.Equal(t, "1.", Marker(ListNumber, 0))
	assert.Equal(t, "2.", Marker(ListNumber, 1))
	assert.Equal(t, "10.", Marker(ListNumber, 9))
}

func TestMarker_Dash(t *testing.T) {
	assert.Equal(t, "-", Marker(ListDash, 0))
}

func TestMarker_NoneAndInlineProduceNothing(t *testing.T) {
	assert.Equal(t, "", Marker(ListNone, 0))
	assert.Equal(t, "", Marker(ListInline, 0))
}

func TestParseListStyle_FailsClosedToBullet(t *testing.T) {
	assert.Equal(t, ListBullet, ParseListStyle("sparkly"))
	assert.Equal(t, ListBullet, ParseListStyle(""))
	assert.Equal(t, ListDash, ParseListStyle("dash"))
	assert.Equal(t, ListInline, ParseListStyle("inline"))
}

func TestJoinInline(t *testing.T) {
	assert.Equal(t, "Go, SQL, Rust", JoinInline([]string{"Go", "SQL", "Rust"}))
}

func TestJoinInline_SkipsEmptyItems(t *testing.T) {
	assert.Equal(t, "Go, Rust", JoinInline([]string{"Go", "", "   ", "Rust"}))
	assert.Equal(t, "", JoinInline(nil))
}
