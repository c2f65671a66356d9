package weld

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type wrapperA struct{}
type wrapperB struct{}

type pinger interface {
	Ping() string
}

type echoer interface {
	Echo(s string) string
}

type pingDelegate struct{ reply string }

func (d pingDelegate) Ping() string { return d.reply }

type echoDelegate struct{}

func (echoDelegate) Echo(s string) string { return s }

func TestRegisterAndResolveDelegate(t *testing.T) {
	RegisterDelegate[*wrapperA](pingDelegate{reply: "pong"})

	got := ResolveDelegate[pinger](&wrapperA{})
	require.Equal(t, "pong", got.Ping())
}

func TestResolvePicksByTargetInterface(t *testing.T) {
	RegisterDelegate[*wrapperA](pingDelegate{reply: "pong"})
	RegisterDelegate[*wrapperA](echoDelegate{})

	require.Equal(t, "hi", ResolveDelegate[echoer](&wrapperA{}).Echo("hi"))
	require.Equal(t, "pong", ResolveDelegate[pinger](&wrapperA{}).Ping())
}

func TestRegisterReplacesSameDelegateType(t *testing.T) {
	RegisterDelegate[*wrapperB](pingDelegate{reply: "first"})
	RegisterDelegate[*wrapperB](pingDelegate{reply: "second"})

	require.Equal(t, "second", ResolveDelegate[pinger](&wrapperB{}).Ping())
}

func TestResolveMissingDelegatePanics(t *testing.T) {
	type unwired struct{}

	require.Panics(t, func() {
		ResolveDelegate[pinger](&unwired{})
	})
}

func TestHasDelegate(t *testing.T) {
	type unwired struct{}

	RegisterDelegate[*wrapperA](pingDelegate{reply: "pong"})

	require.True(t, HasDelegate[pinger](&wrapperA{}))
	require.False(t, HasDelegate[pinger](&unwired{}))
}

func TestRegisterNilDelegatePanics(t *testing.T) {
	require.Panics(t, func() {
		RegisterDelegate[*wrapperA](nil)
	})
}
