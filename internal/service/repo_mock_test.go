package service

import (
	"time"

	"github.com/novusx/novusx-server/internal/game"
)

type mockRepo struct {
	matches      map[uint]*game.Match
	nextID       uint
	updated      *game.Match
	statsCalled  bool
	resignedUUID string
}

func newMockRepo() *mockRepo {
	return &mockRepo{matches: map[uint]*game.Match{}, nextID: 1}
}

func (m *mockRepo) CreateMatch(g *game.Match) error {
	g.ID = m.nextID
	m.nextID++
	m.matches[g.ID] = g
	return nil
}

func (m *mockRepo) GetMatchByID(id uint) (*game.Match, error) {
	if g, ok := m.matches[id]; ok {
		return g, nil
	}
	return nil, ErrMatchNotFound
}

func (m *mockRepo) FindMatchByJoinCode(code string) (*game.Match, error) {
	for _, g := range m.matches {
		if g.JoinCode == code {
			return g, nil
		}
	}
	return nil, ErrMatchNotFound
}

func (m *mockRepo) UpdateMatch(g *game.Match) error {
	m.updated = g
	m.matches[g.ID] = g
	return nil
}

func (m *mockRepo) UpdateStatsOnMatchEnd(g *game.Match, resignedUUID string) error {
	m.statsCalled = true
	m.resignedUUID = resignedUUID
	return nil
}

func (m *mockRepo) RemovePlayerByUUID(matchID uint, playerUUID string) error {
	return nil
}

// runningMatch seats two players and deals the opening position.
func runningMatch(repo *mockRepo) *game.Match {
	g := &game.Match{
		JoinCode: "AAAAAA",
		Status:   game.StatusInProgress,
		Players: []game.MatchPlayer{
			{PlayerUUID: "uuid-ada", PlayerName: "Ada", Seat: 0},
			{PlayerUUID: "uuid-ben", PlayerName: "Ben", Seat: 1},
		},
	}
	if err := writeState(g, game.NewGame(), newArbiter()); err != nil {
		panic(err)
	}
	g.ActionDeadline = time.Now().Add(time.Minute)
	_ = repo.CreateMatch(g)
	return g
}
