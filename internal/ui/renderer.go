package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/johanforsgren/tokendash/internal/domain"
	"github.com/johanforsgren/tokendash/internal/logger"
)

// Sender is the part of *tea.Program the renderer needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Renderer turns controller render calls into bubbletea messages. It is
// safe for concurrent use; messages sent before a program is attached are
// dropped.
type Renderer struct {
	mu     sync.RWMutex
	sender Sender
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Attach(sender Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sender = sender
}

func (r *Renderer) send(msg tea.Msg) {
	r.mu.RLock()
	sender := r.sender
	r.mu.RUnlock()

	if sender == nil {
		logger.Log("UI: no program attached, dropping %T", msg)
		return
	}
	sender.Send(msg)
}

func (r *Renderer) ShowView(screen domain.Screen) {
	r.send(showViewMsg{screen: screen})
}

func (r *Renderer) RenderLoginError(msg string) {
	r.send(loginErrorMsg{text: msg})
}

func (r *Renderer) RenderTable(table domain.Table) {
	r.send(tableMsg{table: table})
}

func (r *Renderer) RenderSummary(summary domain.Summary) {
	r.send(summaryMsg{summary: summary})
}

func (r *Renderer) RenderLastUpdated(at time.Time) {
	r.send(lastUpdatedMsg{at: at})
}

func (r *Renderer) RenderAutoRefresh(enabled bool) {
	r.send(autoRefreshMsg{enabled: enabled})
}

var _ domain.Renderer = (*Renderer)(nil)

type showViewMsg struct {
	screen domain.Screen
}

type loginErrorMsg struct {
	text string
}

type tableMsg struct {
	table domain.Table
}

type summaryMsg struct {
	summary domain.Summary
}

type lastUpdatedMsg struct {
	at time.Time
}

type autoRefreshMsg struct {
	enabled bool
}
