package handler

import (
	"strings"

	"hdwallet-settlement/internal/adapter/http/dto"
	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"
	"hdwallet-settlement/pkg/apperror"
	"hdwallet-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet administration endpoints.
type WalletHandler struct {
	walletMgr ports.WalletManager
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletMgr ports.WalletManager) *WalletHandler {
	return &WalletHandler{walletMgr: walletMgr}
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := h.walletMgr.CreateWallet(c.Request.Context(), ports.CreateWalletRequest{
		Currency: strings.ToUpper(req.Currency),
		Network:  domain.Network(req.Network),
		Label:    req.Label,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewWalletResponse(wallet))
}

// List handles GET /api/v1/wallets.
func (h *WalletHandler) List(c *gin.Context) {
	wallets, err := h.walletMgr.ListWallets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WalletResponse, 0, len(wallets))
	for i := range wallets {
		items = append(items, dto.NewWalletResponse(&wallets[i]))
	}
	response.OK(c, items)
}

// Get handles GET /api/v1/wallets/:id.
func (h *WalletHandler) Get(c *gin.Context) {
	id, ok := walletIDParam(c)
	if !ok {
		return
	}

	wallet, err := h.walletMgr.GetWallet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWalletResponse(wallet))
}

// UpdatePassword handles POST /api/v1/wallets/:id/password.
func (h *WalletHandler) UpdatePassword(c *gin.Context) {
	id, ok := walletIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.walletMgr.UpdatePassword(c.Request.Context(), id, req.OldPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"wallet_id": id.String(), "password_updated": true})
}

// Delete handles DELETE /api/v1/wallets/:id. The body carries the password.
func (h *WalletHandler) Delete(c *gin.Context) {
	id, ok := walletIDParam(c)
	if !ok {
		return
	}

	var req dto.DeleteWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.walletMgr.DeleteWallet(c.Request.Context(), id, req.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"wallet_id": id.String(), "deleted": true})
}

func walletIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid wallet id"))
		return uuid.Nil, false
	}
	return id, true
}
