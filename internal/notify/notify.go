// Package notify announces input mode changes on the desktop.
package notify

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"vitelex/internal/types"
)

const (
	notifyDest   = "org.freedesktop.Notifications"
	notifyPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod = notifyDest + ".Notify"
	appName      = "vitelex"
	expireMillis = int32(1500)
)

// Notifier is told about every input mode switch.
type Notifier interface {
	ModeChanged(mode types.InputMode) error
	Close() error
}

// Message returns the summary and body shown for mode.
func Message(mode types.InputMode) (string, string) {
	if mode == types.ModeVietnamese {
		return "Tiếng Việt", "Telex input is on"
	}
	return "English", "Telex input is off"
}

type busObject interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// DBus posts notifications to the freedesktop notification service on the
// session bus. Consecutive notifications replace each other.
type DBus struct {
	mu        sync.Mutex
	conn      *dbus.Conn
	obj       busObject
	replaceID uint32
}

// NewDBus opens a private session bus connection.
func NewDBus() (*DBus, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("notify: connect session bus: %w", err)
	}
	return &DBus{conn: conn, obj: conn.Object(notifyDest, notifyPath)}, nil
}

func (d *DBus) ModeChanged(mode types.InputMode) error {
	summary, body := Message(mode)

	d.mu.Lock()
	defer d.mu.Unlock()
	call := d.obj.Call(notifyMethod, 0,
		appName, d.replaceID, "input-keyboard", summary, body,
		[]string{}, map[string]dbus.Variant{}, expireMillis)
	var id uint32
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	d.replaceID = id
	return nil
}

func (d *DBus) Close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}

// Nop discards notifications.
type Nop struct{}

func (Nop) ModeChanged(types.InputMode) error { return nil }
func (Nop) Close() error                      { return nil }

var (
	_ Notifier = (*DBus)(nil)
	_ Notifier = Nop{}
)
