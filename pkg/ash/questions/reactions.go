package questions

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrUnknownEmoji is returned for an emoji key outside models.ReactionEmojis
var ErrUnknownEmoji = apperr.Validation("Unknown emoji")

// ReactionRequest represents the request to toggle a reaction
type ReactionRequest struct {
	Emoji string `json:"emoji" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

// ReactionResponse reports the requester's state and the new totals
type ReactionResponse struct {
	TargetType models.ReactionTarget `json:"target_type"`
	TargetID   uint                  `json:"target_id"`
	Emoji      string                `json:"emoji"`
	Active     bool                  `json:"active"`
	Counts     map[string]int        `json:"counts"`
}

func emptyCounts() map[string]int {
	counts := make(map[string]int, len(models.ReactionEmojis))
	for _, e := range models.ReactionEmojis {
		counts[e] = 0
	}
	return counts
}

// reactionCounts returns per-emoji totals for every id, zero-filled
func reactionCounts(ctx context.Context, db *gorm.DB, target models.ReactionTarget, ids []uint) (map[uint]map[string]int, error) {
	out := make(map[uint]map[string]int, len(ids))
	for _, id := range ids {
		out[id] = emptyCounts()
	}
	if len(ids) == 0 {
		return out, nil
	}

	var rows []struct {
		TargetID uint
		Emoji    string
		Count    int
	}
	err := db.WithContext(ctx).Model(&models.Reaction{}).
		Select("target_id, emoji, COUNT(*) AS count").
		Where("target_type = ? AND target_id IN ?", target, ids).
		Group("target_id, emoji").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Storage(err, "Failed to count reactions")
	}
	for _, r := range rows {
		out[r.TargetID][r.Emoji] = r.Count
	}
	return out, nil
}

// Toggle adds the member's reaction, or removes it when already present.
// Reports whether the reaction is active afterwards.
func (h *Handler) Toggle(ctx context.Context, target models.ReactionTarget, targetID, memberID uint, emoji string) (bool, error) {
	if !slices.Contains(models.ReactionEmojis, emoji) {
		return false, ErrUnknownEmoji
	}

	var active bool
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		key := models.Reaction{TargetType: target, TargetID: targetID, MemberID: memberID, Emoji: emoji}

		result := tx.Where(&key).Delete(&models.Reaction{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			active = false
			return nil
		}

		if err := tx.Create(&key).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		active = true
		return nil
	})
	if err != nil {
		return false, apperr.Storage(err, "Failed to update reaction")
	}
	return active, nil
}

// ReactToQuestion toggles a reaction on a question
// @Summary React to a question
// @Description Toggles the emoji for the requester; emoji is one of thumbs_up, thumbs_down, smile, heart, wow
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body ReactionRequest true "Reaction"
// @Success 200 {object} ReactionResponse
// @Failure 404 {object} map[string]string "Question not found"
// @Router /questions/{id}/reactions [post]
func (h *Handler) ReactToQuestion(c *gin.Context) {
	h.react(c, models.ReactionTargetQuestion, &models.Question{}, ErrQuestionNotFound)
}

// ReactToAnswer toggles a reaction on an answer
// @Summary React to an answer
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Answer ID"
// @Param request body ReactionRequest true "Reaction"
// @Success 200 {object} ReactionResponse
// @Failure 404 {object} map[string]string "Answer not found"
// @Router /answers/{id}/reactions [post]
func (h *Handler) ReactToAnswer(c *gin.Context) {
	h.react(c, models.ReactionTargetAnswer, &models.Answer{}, ErrAnswerNotFound)
}

func (h *Handler) react(c *gin.Context, target models.ReactionTarget, model interface{}, notFound error) {
	id, ok := parseID(c)
	if !ok {
		apperr.Respond(c, h.log, apperr.Validation("Invalid ID"))
		return
	}

	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("Emoji and name are required"))
		return
	}
	ctx := c.Request.Context()

	if err := h.exists(ctx, model, id, notFound); err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	member, err := h.resolver.ResolveOrCreate(ctx, req.Name, req.Email)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	active, err := h.Toggle(ctx, target, id, member.ID, req.Emoji)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	counts, err := reactionCounts(ctx, h.db, target, []uint{id})
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	h.log.Debug("reaction toggled",
		zap.String("target", string(target)),
		zap.Uint("target_id", id),
		zap.String("emoji", req.Emoji),
		zap.Bool("active", active))

	c.JSON(http.StatusOK, ReactionResponse{
		TargetType: target,
		TargetID:   id,
		Emoji:      req.Emoji,
		Active:     active,
		Counts:     counts[id],
	})
}
