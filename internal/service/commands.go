package service

import (
	"context"
	"fmt"
	"strings"
)

// mutatingMarkers are matched as plain substrings, case-sensitive.
var mutatingMarkers = []string{"Node", "Link", "cog-set-tv", "cog-delete"}

// ModifiesAtomSpace guesses whether command may change the AtomSpace.
func ModifiesAtomSpace(command string) bool {
	for _, m := range mutatingMarkers {
		if strings.Contains(command, m) {
			return true
		}
	}
	return false
}

// ExecuteCommand sends text to the backend and writes the exchange to the
// output panel. Store-mutating commands schedule one extra refresh.
func (c *DashboardController) ExecuteCommand(ctx context.Context, text string) (string, error) {
	if !c.isConnected() {
		c.addOutput(ctx, msgNotConnected)
		return "", ErrNotConnected
	}

	command := strings.TrimSpace(text)
	if command == "" {
		c.addOutput(ctx, msgEmptyCommand)
		return "", ErrEmptyCommand
	}

	c.addOutput(ctx, fmt.Sprintf(msgCommandEcho, command))

	result, err := c.evaluate(ctx, command)
	if err != nil {
		c.log.Errorw("command_failed", "command", command, "err", err)
		c.addOutput(ctx, fmt.Sprintf(msgCommandError, err))
		return "", fmt.Errorf("evaluate %q: %w", command, err)
	}

	c.addOutput(ctx, result)

	c.mu.Lock()
	c.fields.Command = ""
	c.mu.Unlock()
	c.notify()

	if ModifiesAtomSpace(command) {
		c.afterTracked(c.opts.MutationRefreshDelay, "refresh_after_mutation", func(ctx context.Context) {
			_ = c.RefreshAtomSpace(ctx)
		})
	}
	return result, nil
}

// SubmitCommand executes whatever is in the command field.
func (c *DashboardController) SubmitCommand(ctx context.Context) (string, error) {
	c.mu.Lock()
	text := c.fields.Command
	c.mu.Unlock()
	return c.ExecuteCommand(ctx, text)
}

// HandleKey reacts to a key press in the command field. Only Ctrl+Enter does
// anything; handled reports whether the key was consumed.
func (c *DashboardController) HandleKey(ctx context.Context, ctrl bool, key string) (handled bool, err error) {
	if !ctrl || key != "Enter" {
		return false, nil
	}
	_, err = c.SubmitCommand(ctx)
	return true, err
}

// evaluate calls the backend and turns a panic into an error.
func (c *DashboardController) evaluate(ctx context.Context, command string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend panic: %v", r)
		}
	}()
	return c.backend.Evaluate(ctx, command)
}
