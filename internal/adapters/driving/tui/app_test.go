package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
)

// stubSearch is a scripted SearchService.
type stubSearch struct {
	response *domain.SearchResponse
	err      error
	queries  []string
}

func (s *stubSearch) Search(_ context.Context, query string, _ domain.SearchOptions) (*domain.SearchResponse, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func newTestApp(t *testing.T, search *stubSearch) *App {
	t.Helper()
	app, err := NewApp(&Ports{Search: search})
	require.NoError(t, err)
	return app
}

func TestNewApp_RequiresSearchService(t *testing.T) {
	_, err := NewApp(nil)
	assert.ErrorIs(t, err, ErrNoSearchService)

	_, err = NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrNoSearchService)
}

func TestApp_EnterRunsSearch(t *testing.T) {
	search := &stubSearch{response: &domain.SearchResponse{Query: "india"}}
	app := newTestApp(t, search)
	app.input.SetValue("india")

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	updated := model.(*App)
	assert.True(t, updated.searching)

	msg := cmd()
	completed, ok := msg.(searchCompleted)
	require.True(t, ok)
	assert.NoError(t, completed.err)
	assert.Equal(t, []string{"india"}, search.queries)
}

func TestApp_EnterIgnoresEmptyQuery(t *testing.T) {
	search := &stubSearch{}
	app := newTestApp(t, search)
	app.input.SetValue("   ")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, search.queries)
}

func TestApp_SearchCompletedShowsResults(t *testing.T) {
	app := newTestApp(t, &stubSearch{})
	app.searching = true

	model, _ := app.Update(searchCompleted{response: &domain.SearchResponse{
		Query:           "primer ministro",
		TranslatedQuery: "prime minister",
		Results: []domain.SearchHit{
			{DocID: 0, Score: 0.83, Text: "The Prime Minister of India is the head of government."},
			{DocID: 4, Score: 0.12, Text: "Hindi is one of the official languages of India."},
		},
	}})

	updated := model.(*App)
	assert.False(t, updated.searching)

	view := updated.View()
	assert.Contains(t, view, "Translated: prime minister")
	assert.Contains(t, view, "Prime Minister of India")
	assert.Contains(t, view, "0.8300")
}

func TestApp_SearchCompletedShowsError(t *testing.T) {
	app := newTestApp(t, &stubSearch{})

	model, _ := app.Update(searchCompleted{err: errors.New("index unavailable")})

	view := model.(*App).View()
	assert.Contains(t, view, "index unavailable")
}

func TestApp_TranslationSkippedNotice(t *testing.T) {
	app := newTestApp(t, &stubSearch{})

	model, _ := app.Update(searchCompleted{response: &domain.SearchResponse{
		Query:              "hola",
		TranslatedQuery:    "hola",
		TranslationSkipped: true,
		Results:            []domain.SearchHit{{DocID: 1, Score: 0.3, Text: "doc"}},
	}})

	view := model.(*App).View()
	assert.Contains(t, view, "Translation unavailable")
}

func TestApp_ArrowKeysMoveSelection(t *testing.T) {
	app := newTestApp(t, &stubSearch{})
	app.response = &domain.SearchResponse{Results: []domain.SearchHit{
		{DocID: 0}, {DocID: 1}, {DocID: 2},
	}}

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, model.(*App).selected)

	// Selection stops at the last result.
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, model.(*App).selected)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, model.(*App).selected)
}

func TestApp_EscClearsThenQuits(t *testing.T) {
	app := newTestApp(t, &stubSearch{})
	app.response = &domain.SearchResponse{}

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Nil(t, model.(*App).response)

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
