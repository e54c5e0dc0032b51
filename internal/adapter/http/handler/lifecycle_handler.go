package handler

import (
	"context"
	"time"

	"nft-lifecycle-engine/internal/adapter/http/dto"
	"nft-lifecycle-engine/internal/adapter/http/middleware"
	"nft-lifecycle-engine/internal/core/domain"
	"nft-lifecycle-engine/internal/core/ports"
	"nft-lifecycle-engine/pkg/apperror"
	"nft-lifecycle-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// LifecycleHandler exposes the asset lifecycle operations.
type LifecycleHandler struct {
	lifecycleSvc ports.LifecycleService
}

// NewLifecycleHandler creates a new LifecycleHandler.
func NewLifecycleHandler(lifecycleSvc ports.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{lifecycleSvc: lifecycleSvc}
}

// GetState handles GET /api/v1/assets.
func (h *LifecycleHandler) GetState(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, apperror.Validation("missing wallet session"))
		return
	}

	assets, err := h.lifecycleSvc.GetState(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.WalletStateResponse{
		WalletAddress: session.WalletAddress,
		Assets:        make([]dto.AssetResponse, 0, len(assets)),
	}
	for i := range assets {
		resp.Assets = append(resp.Assets, toAssetResponse(&assets[i]))
	}
	response.OK(c, resp)
}

// Stake handles POST /api/v1/assets/:id/stake.
func (h *LifecycleHandler) Stake(c *gin.Context) {
	h.runOperation(c, h.lifecycleSvc.Stake)
}

// Unstake handles POST /api/v1/assets/:id/unstake.
func (h *LifecycleHandler) Unstake(c *gin.Context) {
	h.runOperation(c, h.lifecycleSvc.Unstake)
}

// Claim handles POST /api/v1/assets/:id/claim.
func (h *LifecycleHandler) Claim(c *gin.Context) {
	h.runOperation(c, h.lifecycleSvc.Claim)
}

func (h *LifecycleHandler) runOperation(
	c *gin.Context,
	op func(ctx context.Context, session domain.Session, assetID string) (*ports.OperationResult, error),
) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, apperror.Validation("missing wallet session"))
		return
	}
	assetID := c.Param("id")
	if assetID == "" {
		response.Error(c, apperror.Validation("asset id is required"))
		return
	}

	result, err := op(c.Request.Context(), session, assetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OperationResponse{
		AssetID:       result.AssetID,
		Store:         string(result.Store),
		StakeStatus:   string(result.StakeStatus),
		StakingSource: string(result.StakingSource),
		TxHash:        result.TxHash,
	})
}

// Burn handles POST /api/v1/burns.
func (h *LifecycleHandler) Burn(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, apperror.Validation("missing wallet session"))
		return
	}

	var req dto.BurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.lifecycleSvc.Burn(c.Request.Context(), session, req.AssetIDs)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.BurnResponse{
		BurnTxID:          result.BurnTxID,
		BurnType:          string(result.BurnType),
		BurnedAssetIDs:    result.BurnedAssetIDs,
		SucceededTokenIDs: result.SucceededTokenIDs,
		ChainTxHashes:     result.ChainTxHashes,
	}
	if result.ResultAsset != nil {
		r := toAssetResponse(result.ResultAsset)
		resp.ResultAsset = &r
	}
	response.Created(c, resp)
}

// Reconcile handles POST /api/v1/reconcile.
func (h *LifecycleHandler) Reconcile(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, apperror.Validation("missing wallet session"))
		return
	}

	result, err := h.lifecycleSvc.Reconcile(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ReconcileResponse{
		WalletAddress:   result.WalletAddress,
		RecordsInserted: result.RecordsInserted,
	})
}

// GetStakeSummary handles GET /api/v1/stakes/summary.
func (h *LifecycleHandler) GetStakeSummary(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, apperror.Validation("missing wallet session"))
		return
	}

	summary, err := h.lifecycleSvc.GetStakeSummary(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StakeSummaryResponse{
		WalletAddress:    summary.WalletAddress,
		ActiveStakes:     summary.ActiveStakes,
		DailyRewardTotal: summary.DailyRewardTotal,
	})
}

// toAssetResponse converts a domain.Asset to its DTO.
func toAssetResponse(a *domain.Asset) dto.AssetResponse {
	resp := dto.AssetResponse{
		AssetID:       a.AssetID,
		TokenID:       a.TokenID,
		Rarity:        string(a.Rarity),
		Store:         string(a.Store),
		StakeStatus:   string(a.StakeStatus),
		StakingSource: string(a.StakingSource),
	}
	if a.StakedAt != nil {
		s := a.StakedAt.Format(time.RFC3339)
		resp.StakedAt = &s
	}
	return resp
}
