package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/johanforsgren/tokendash/internal/domain"
)

type fakeService struct {
	mu        sync.Mutex
	verify    func(ctx context.Context, token string) (bool, error)
	list      func(ctx context.Context, credential string) (*domain.TokenList, error)
	verified  []string
	listed    []string
	listCalls chan string
}

func newFakeService() *fakeService {
	return &fakeService{
		verify: func(context.Context, string) (bool, error) { return true, nil },
		list: func(context.Context, string) (*domain.TokenList, error) {
			return &domain.TokenList{}, nil
		},
		listCalls: make(chan string, 64),
	}
}

func (f *fakeService) VerifyToken(ctx context.Context, token string) (bool, error) {
	f.mu.Lock()
	f.verified = append(f.verified, token)
	verify := f.verify
	f.mu.Unlock()
	return verify(ctx, token)
}

func (f *fakeService) ListTokens(ctx context.Context, credential string) (*domain.TokenList, error) {
	f.mu.Lock()
	f.listed = append(f.listed, credential)
	list := f.list
	f.mu.Unlock()

	select {
	case f.listCalls <- credential:
	default:
	}
	return list(ctx, credential)
}

func (f *fakeService) setVerify(fn func(context.Context, string) (bool, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verify = fn
}

func (f *fakeService) setList(fn func(context.Context, string) (*domain.TokenList, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = fn
}

func (f *fakeService) verifyCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.verified)
}

func (f *fakeService) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listed)
}

type fakeRenderer struct {
	mu          sync.Mutex
	views       []domain.Screen
	loginErrors []string
	tables      []domain.Table
	summaries   []domain.Summary
	updated     []time.Time
	autoRefresh []bool
}

func (r *fakeRenderer) ShowView(screen domain.Screen) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, screen)
}

func (r *fakeRenderer) RenderLoginError(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loginErrors = append(r.loginErrors, msg)
}

func (r *fakeRenderer) RenderTable(table domain.Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables = append(r.tables, table)
}

func (r *fakeRenderer) RenderSummary(summary domain.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries = append(r.summaries, summary)
}

func (r *fakeRenderer) RenderLastUpdated(at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updated = append(r.updated, at)
}

func (r *fakeRenderer) RenderAutoRefresh(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.autoRefresh = append(r.autoRefresh, enabled)
}

func (r *fakeRenderer) loginErrorHistory() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.loginErrors...)
}

func (r *fakeRenderer) lastLoginError() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.loginErrors) == 0 {
		return "", false
	}
	return r.loginErrors[len(r.loginErrors)-1], true
}

func (r *fakeRenderer) lastView() (domain.Screen, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.views) == 0 {
		return 0, false
	}
	return r.views[len(r.views)-1], true
}

func (r *fakeRenderer) lastTable() domain.Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.tables) == 0 {
		return domain.Table{}
	}
	return r.tables[len(r.tables)-1]
}

func (r *fakeRenderer) lastSummary() domain.Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.summaries) == 0 {
		return domain.Summary{}
	}
	return r.summaries[len(r.summaries)-1]
}

func (r *fakeRenderer) lastAutoRefresh() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.autoRefresh) == 0 {
		return false
	}
	return r.autoRefresh[len(r.autoRefresh)-1]
}

func (r *fakeRenderer) renderCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views) + len(r.loginErrors) + len(r.tables) + len(r.summaries) + len(r.updated) + len(r.autoRefresh)
}

const waitTimeout = 2 * time.Second

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(waitTimeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}
