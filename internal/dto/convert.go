package dto

import "github.com/GlebRadaev/gigmart/internal/domain"

func FromGig(g *domain.Gig) GigResponseDTO {
	return GigResponseDTO{
		ID:          g.ID,
		PosterID:    g.PosterID,
		Title:       g.Title,
		Description: g.Description,
		Reward:      g.Reward,
		State:       string(g.State),
		AssigneeID:  g.AssigneeID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func FromApplication(a *domain.Application) ApplicationResponseDTO {
	return ApplicationResponseDTO{
		ID:          a.ID,
		GigID:       a.GigID,
		ApplicantID: a.ApplicantID,
		Message:     a.Message,
		CreatedAt:   a.CreatedAt,
	}
}

func FromLedgerEntry(e *domain.LedgerEntry) LedgerEntryResponseDTO {
	return LedgerEntryResponseDTO{
		ID:           e.ID,
		TransferID:   e.TransferID.String(),
		Kind:         string(e.Kind),
		Amount:       e.Amount,
		BalanceAfter: e.BalanceAfter,
		CreatedAt:    e.CreatedAt,
	}
}
