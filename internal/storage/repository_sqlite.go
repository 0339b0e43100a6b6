package storage

import (
	"errors"
	"time"

	"github.com/novusx/novusx-server/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateMatch(m *game.Match) error {
	return r.db.Create(m).Error
}

func (r *sqliteRepository) GetMatchByID(id uint) (*game.Match, error) {
	var m game.Match
	if err := r.db.Preload("Players").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) FindMatchByJoinCode(code string) (*game.Match, error) {
	var m game.Match
	err := r.db.Preload("Players").Where("join_code = ?", code).First(&m).Error
	return &m, err
}

func (r *sqliteRepository) UpdateMatch(m *game.Match) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(m).Error
}

func (r *sqliteRepository) GetPublicMatches(maxAge time.Duration) ([]game.Match, error) {
	var matches []game.Match
	cutoff := time.Now().Add(-maxAge)
	if err := r.db.Preload("Players").
		Where("private = ? AND status = ? AND created_at > ?", false, game.StatusWaiting, cutoff).
		Order("created_at desc").
		Find(&matches).Error; err != nil {
		return nil, err
	}
	// Only list matches that still have their creator seated.
	filtered := make([]game.Match, 0, len(matches))
	for i := range matches {
		if len(matches[i].Players) >= 1 {
			filtered = append(filtered, matches[i])
		}
	}
	return filtered, nil
}

func (r *sqliteRepository) RemovePlayerByUUID(matchID uint, playerUUID string) error {
	return r.db.
		Where("match_id = ? AND player_uuid = ?", matchID, playerUUID).
		Delete(&game.MatchPlayer{}).Error
}

func (r *sqliteRepository) UpsertUser(uuid, name string) error {
	var u game.User
	if err := r.db.Where("player_uuid = ?", uuid).First(&u).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		u = game.User{PlayerUUID: uuid}
	}
	u.PlayerName = name
	return r.db.Save(&u).Error
}

func (r *sqliteRepository) UpdateStatsOnMatchEnd(m *game.Match, resignedUUID string) error {
	// Helper to upsert and add deltas.
	upsert := func(uuid, name string, played, wins, draws, resigns int) error {
		var u game.User
		if err := r.db.Where("player_uuid = ?", uuid).First(&u).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			u = game.User{PlayerUUID: uuid}
		}
		u.PlayerName = name
		u.GamesPlayed += played
		u.Wins += wins
		u.Draws += draws
		u.Resignations += resigns
		return r.db.Save(&u).Error
	}
	if len(m.Players) != 2 {
		return nil
	}
	draw := m.Winner == "" && m.Outcome != game.OutcomeAbandoned
	for i := range m.Players {
		p := m.Players[i]
		wins := 0
		if m.Winner != "" && p.PlayerUUID == m.Winner {
			wins = 1
		}
		draws := 0
		if draw {
			draws = 1
		}
		resigns := 0
		if resignedUUID != "" && p.PlayerUUID == resignedUUID {
			resigns = 1
		}
		if err := upsert(p.PlayerUUID, p.PlayerName, 1, wins, draws, resigns); err != nil {
			return err
		}
	}
	return nil
}

func (r *sqliteRepository) GetStatsByUUID(uuid string) (*game.User, error) {
	var u game.User
	if err := r.db.Where("player_uuid = ?", uuid).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &game.User{PlayerUUID: uuid}, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetTopPlayers returns top N players ordered by Wins desc, then GamesPlayed desc.
func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.User, error) {
	if limit <= 0 {
		limit = 10
	}
	var users []game.User
	if err := r.db.Model(&game.User{}).
		Order("wins DESC").
		Order("games_played DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *sqliteRepository) ClaimTimedOutMatchIDs(now time.Time, staleClaimAfter time.Duration, workerID string) ([]uint, error) {
	// Claim first so concurrent scanners never resolve the same match,
	// then read back this worker's claims. Claims older than
	// staleClaimAfter belong to a worker that died mid-resolution and
	// are taken over.
	staleBefore := now.Add(-staleClaimAfter)
	res := r.db.Model(&game.Match{}).
		Where("status = ? AND action_deadline <= ? AND (timeout_claimed_by = ? OR timeout_claimed_at <= ?)",
			game.StatusInProgress, now, "", staleBefore).
		Updates(map[string]any{"timeout_claimed_by": workerID, "timeout_claimed_at": now})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	var ids []uint
	if err := r.db.Model(&game.Match{}).
		Where("status = ? AND timeout_claimed_by = ?", game.StatusInProgress, workerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
