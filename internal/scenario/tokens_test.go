package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAction(t *testing.T) {
	cases := []struct {
		token string
		want  ActionKind
	}{
		{"open", ActionOpen},
		{"Open", ActionOpen},
		{"CLICK", ActionClick},
		{"type", ActionType},
		{"wait", ActionWait},
		{"select", ActionSelect},
		{"aç", ActionOpen},
		{"AÇ", ActionOpen},
		{"Tıkla", ActionClick},
		{"yaz", ActionType},
		{"bekle", ActionWait},
		{"seç", ActionSelect},
		{"  open  ", ActionOpen},
		{"", ActionNone},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ResolveAction(tc.token).Kind, "token %q", tc.token)
	}
}

func TestResolveActionUnknown(t *testing.T) {
	action := ResolveAction("levitate")
	assert.Equal(t, ActionUnknown, action.Kind)
	assert.Equal(t, "levitate", action.Raw)
}

func TestResolvePriority(t *testing.T) {
	for token, want := range map[string]Priority{
		"high": PriorityHigh, "Yüksek": PriorityHigh,
		"medium": PriorityMedium, "orta": PriorityMedium, "": PriorityMedium,
		"low": PriorityLow, "düşük": PriorityLow,
	} {
		got, ok := ResolvePriority(token)
		assert.True(t, ok, "token %q", token)
		assert.Equal(t, want, got, "token %q", token)
	}

	got, ok := ResolvePriority("urgent")
	assert.False(t, ok)
	assert.Equal(t, PriorityMedium, got)
}

func TestResolveTestKind(t *testing.T) {
	for token, want := range map[string]TestKind{
		"web": KindWeb, "": KindWeb,
		"mobile": KindMobile, "Mobil": KindMobile,
		"API": KindAPI,
	} {
		got, ok := ResolveTestKind(token)
		assert.True(t, ok, "token %q", token)
		assert.Equal(t, want, got, "token %q", token)
	}

	got, ok := ResolveTestKind("desktop")
	assert.False(t, ok)
	assert.Equal(t, KindWeb, got)
}
