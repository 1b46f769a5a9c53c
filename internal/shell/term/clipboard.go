package term

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/atomicstack/popup-shell/internal/logging"
)

// clipBuffer prefers the system clipboard and falls back to memory when it
// is disabled or unavailable.
type clipBuffer struct {
	system bool

	mu   sync.Mutex
	text string
	set  bool
}

func (c *clipBuffer) String() (string, bool) {
	if c.useSystem() {
		text, err := clipboard.ReadAll()
		if err == nil {
			return text, true
		}
		logging.Warnf("clipboard read: %v", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, c.set
}

func (c *clipBuffer) SetString(text string) {
	c.mu.Lock()
	c.text = text
	c.set = true
	c.mu.Unlock()
	if c.useSystem() {
		if err := clipboard.WriteAll(text); err != nil {
			logging.Warnf("clipboard write: %v", err)
		}
	}
}

func (c *clipBuffer) useSystem() bool {
	return c.system && !clipboard.Unsupported
}
