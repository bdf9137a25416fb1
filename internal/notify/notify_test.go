package notify

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"

	"vitelex/internal/types"
)

type fakeObject struct {
	method string
	args   [][]interface{}
	nextID uint32
	err    error
}

func (f *fakeObject) Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	f.method = method
	f.args = append(f.args, args)
	if f.err != nil {
		return &dbus.Call{Err: f.err}
	}
	f.nextID++
	return &dbus.Call{Body: []interface{}{f.nextID}}
}

func TestDBusReplacesPreviousNotification(t *testing.T) {
	obj := &fakeObject{}
	d := &DBus{obj: obj}

	require.NoError(t, d.ModeChanged(types.ModeLatin))
	require.NoError(t, d.ModeChanged(types.ModeVietnamese))

	require.Equal(t, "org.freedesktop.Notifications.Notify", obj.method)
	require.Len(t, obj.args, 2)
	require.Equal(t, uint32(0), obj.args[0][1])
	require.Equal(t, "English", obj.args[0][3])
	require.Equal(t, uint32(1), obj.args[1][1], "second call replaces the first bubble")
	require.Equal(t, "Tiếng Việt", obj.args[1][3])
	require.NoError(t, d.Close())
}

func TestDBusReportsCallError(t *testing.T) {
	d := &DBus{obj: &fakeObject{err: errors.New("no service")}}
	err := d.ModeChanged(types.ModeLatin)
	require.ErrorContains(t, err, "no service")
}

func TestMessage(t *testing.T) {
	summary, body := Message(types.ModeVietnamese)
	require.Equal(t, "Tiếng Việt", summary)
	require.Contains(t, body, "on")

	summary, _ = Message(types.ModeLatin)
	require.Equal(t, "English", summary)
}
