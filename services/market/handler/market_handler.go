package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lostfound-market/internal/apiclient"
	market "lostfound-market/internal/marketService"
	model "lostfound-market/internal/models"
	"lostfound-market/internal/query"
	"lostfound-market/services/market/helpers"
	"lostfound-market/utils"

	"github.com/gin-gonic/gin"
)

// MarketAPI is the request surface served over HTTP. *apiclient.Client implements it.
type MarketAPI interface {
	Login(identifier, password string) apiclient.Envelope[model.Session]
	Signup(in market.SignupInput) apiclient.Envelope[model.Session]
	ListItems(filter query.ItemFilter) apiclient.Envelope[[]model.Item]
	RecentItems(limit int) apiclient.Envelope[[]model.Item]
	GetItem(id int) apiclient.Envelope[model.Item]
	ReportLostItem(in market.ReportInput) apiclient.Envelope[model.Item]
	ReportFoundItem(in market.ReportInput) apiclient.Envelope[model.Item]
	ApproveItem(id int) apiclient.Envelope[model.Item]
	DeleteItem(id int) apiclient.Envelope[apiclient.Ack]
	ListAuctions(filter query.AuctionFilter) apiclient.Envelope[[]model.Auction]
	GetAuction(id int) apiclient.Envelope[model.Auction]
	CreateAuction(a model.Auction) apiclient.Envelope[model.Auction]
	PlaceBid(auctionID int, amount float64, bidder string) apiclient.Envelope[model.Bid]
	SubmitClaim(in market.ClaimInput) apiclient.Envelope[model.Claim]
	SubmitContact(in market.ContactInput) apiclient.Envelope[apiclient.Ack]
	Stats() apiclient.Envelope[model.Stats]
}

type MarketHandler struct {
	api MarketAPI
}

func NewMarketHandler(api MarketAPI) *MarketHandler {
	return &MarketHandler{api: api}
}

// defaultRecentLimit is the size of the home page "recent items" strip
const defaultRecentLimit = 8

// writeEnvelope turns a facade envelope into an HTTP response and logs the outcome
func writeEnvelope[T any](c *gin.Context, handlerName string, okStatus int, env apiclient.Envelope[T], fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	if !env.Success {
		err := env.Err
		if err == nil {
			err = errors.New(env.Error)
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		fields["handler"] = handlerName
		fields["error"] = err.Error()
		if status >= http.StatusInternalServerError {
			utils.Error(handlerName+": request failed", fields)
		} else {
			utils.Warn(handlerName+": request rejected", fields)
		}
		return
	}

	message := env.Message
	if message == "" {
		message = "ok"
	}
	utils.JSONResponse(c, okStatus, env.Data, message)
	helpers.LogSuccess(handlerName, message, fields)
}

func (h *MarketHandler) pathID(c *gin.Context, handlerName string) (int, bool) {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn(handlerName+": bad path id", map[string]any{"id": c.Param("id")})
		return 0, false
	}
	return id, true
}

// LoginHandler handles POST /auth/login
func (h *MarketHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	env := h.api.Login(req.Email, req.Password)
	fields := map[string]any{"identifier": req.Email}
	if env.Success {
		fields["user_id"] = env.Data.User.ID
	}
	writeEnvelope(c, "LoginHandler", http.StatusOK, env, fields)
}

// SignupHandler handles POST /auth/signup
func (h *MarketHandler) SignupHandler(c *gin.Context) {
	var req helpers.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SignupHandler", err)
		return
	}

	env := h.api.Signup(req.Input())
	writeEnvelope(c, "SignupHandler", http.StatusCreated, env, map[string]any{"email": req.Email, "college_id": req.CollegeID})
}

// ListItemsHandler handles GET /items
func (h *MarketHandler) ListItemsHandler(c *gin.Context) {
	var q helpers.ItemQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListItemsHandler", err)
		return
	}
	filter, err := q.Filter()
	if err != nil {
		helpers.HandleBindError(c, "ListItemsHandler", err)
		return
	}

	env := h.api.ListItems(filter)
	if env.Success && env.Data == nil {
		env.Data = []model.Item{}
	}
	writeEnvelope(c, "ListItemsHandler", http.StatusOK, env, map[string]any{"count": len(env.Data)})
}

// RecentItemsHandler handles GET /items/recent
func (h *MarketHandler) RecentItemsHandler(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err == nil && n <= 0 {
			err = fmt.Errorf("limit must be positive, got %d", n)
		}
		if err != nil {
			helpers.HandleBindError(c, "RecentItemsHandler", err)
			return
		}
		limit = n
	}

	env := h.api.RecentItems(limit)
	if env.Success && env.Data == nil {
		env.Data = []model.Item{}
	}
	writeEnvelope(c, "RecentItemsHandler", http.StatusOK, env, map[string]any{"limit": limit, "count": len(env.Data)})
}

// GetItemHandler handles GET /items/:id
func (h *MarketHandler) GetItemHandler(c *gin.Context) {
	id, ok := h.pathID(c, "GetItemHandler")
	if !ok {
		return
	}
	writeEnvelope(c, "GetItemHandler", http.StatusOK, h.api.GetItem(id), map[string]any{"item_id": id})
}

// ReportLostItemHandler handles POST /lost-items
func (h *MarketHandler) ReportLostItemHandler(c *gin.Context) {
	h.report(c, "ReportLostItemHandler", h.api.ReportLostItem)
}

// ReportFoundItemHandler handles POST /found-items
func (h *MarketHandler) ReportFoundItemHandler(c *gin.Context) {
	h.report(c, "ReportFoundItemHandler", h.api.ReportFoundItem)
}

func (h *MarketHandler) report(c *gin.Context, handlerName string, submit func(market.ReportInput) apiclient.Envelope[model.Item]) {
	var req helpers.ReportItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	env := submit(req.Input())
	writeEnvelope(c, handlerName, http.StatusCreated, env, map[string]any{
		"item_id":     env.Data.ID,
		"category":    req.Category,
		"reported_by": req.ReportedBy,
	})
}

// ApproveItemHandler handles PATCH /items/:id/approve
func (h *MarketHandler) ApproveItemHandler(c *gin.Context) {
	id, ok := h.pathID(c, "ApproveItemHandler")
	if !ok {
		return
	}
	writeEnvelope(c, "ApproveItemHandler", http.StatusOK, h.api.ApproveItem(id), map[string]any{"item_id": id})
}

// DeleteItemHandler handles DELETE /items/:id
func (h *MarketHandler) DeleteItemHandler(c *gin.Context) {
	id, ok := h.pathID(c, "DeleteItemHandler")
	if !ok {
		return
	}
	writeEnvelope(c, "DeleteItemHandler", http.StatusOK, h.api.DeleteItem(id), map[string]any{"item_id": id})
}

// ListAuctionsHandler handles GET /auctions
func (h *MarketHandler) ListAuctionsHandler(c *gin.Context) {
	var q helpers.AuctionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListAuctionsHandler", err)
		return
	}
	filter, err := q.Filter()
	if err != nil {
		helpers.HandleBindError(c, "ListAuctionsHandler", err)
		return
	}

	env := h.api.ListAuctions(filter)
	if env.Success && env.Data == nil {
		env.Data = []model.Auction{}
	}
	writeEnvelope(c, "ListAuctionsHandler", http.StatusOK, env, map[string]any{"count": len(env.Data)})
}

// GetAuctionHandler handles GET /auctions/:id
func (h *MarketHandler) GetAuctionHandler(c *gin.Context) {
	id, ok := h.pathID(c, "GetAuctionHandler")
	if !ok {
		return
	}
	writeEnvelope(c, "GetAuctionHandler", http.StatusOK, h.api.GetAuction(id), map[string]any{"auction_id": id})
}

// CreateAuctionHandler handles POST /auctions
func (h *MarketHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	env := h.api.CreateAuction(req.Auction())
	writeEnvelope(c, "CreateAuctionHandler", http.StatusCreated, env, map[string]any{
		"auction_id":     env.Data.ID,
		"starting_price": req.StartingPrice,
	})
}

// PlaceBidHandler handles POST /auctions/:id/bid
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	id, ok := h.pathID(c, "PlaceBidHandler")
	if !ok {
		return
	}
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	env := h.api.PlaceBid(id, req.Amount, req.BidderName)
	writeEnvelope(c, "PlaceBidHandler", http.StatusCreated, env, map[string]any{
		"auction_id": id,
		"bidder":     req.BidderName,
		"amount":     req.Amount,
	})
}

// SubmitClaimHandler handles POST /claims
func (h *MarketHandler) SubmitClaimHandler(c *gin.Context) {
	var req helpers.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitClaimHandler", err)
		return
	}

	env := h.api.SubmitClaim(req.Input())
	writeEnvelope(c, "SubmitClaimHandler", http.StatusCreated, env, map[string]any{
		"claim_id": env.Data.ID,
		"item_id":  req.ItemID,
	})
}

// ContactHandler handles POST /contact
func (h *MarketHandler) ContactHandler(c *gin.Context) {
	var req helpers.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ContactHandler", err)
		return
	}

	env := h.api.SubmitContact(req.Input())
	writeEnvelope(c, "ContactHandler", http.StatusCreated, env, map[string]any{"email": req.Email})
}

// StatsHandler handles GET /stats
func (h *MarketHandler) StatsHandler(c *gin.Context) {
	writeEnvelope(c, "StatsHandler", http.StatusOK, h.api.Stats(), nil)
}
