package service

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/ZenRepublic/Clubhouse/pkg/app/errors"
	apphttp "github.com/ZenRepublic/Clubhouse/pkg/app/http"
	"github.com/ZenRepublic/Clubhouse/pkg/auth"
	"github.com/ZenRepublic/Clubhouse/pkg/game"
)

var errMissingSigner = errors.New("authenticated signer required")

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the game endpoints on the given chi router.
// Reads are public; every mutating route runs behind authn.
func RegisterRoutes(r chi.Router, service Service, authn func(http.Handler) http.Handler, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/houses/{house}", apphttp.HandleError(h.getHouse))
	r.Get("/campaigns/{campaign}", apphttp.HandleError(h.getCampaign))
	r.Get("/campaigns/{campaign}/players/{identity}", apphttp.HandleError(h.getPlayer))

	r.Group(func(r chi.Router) {
		r.Use(authn)

		r.Post("/admins", apphttp.HandleError(h.addProgramAdmin))
		r.Delete("/admins/{admin}", apphttp.HandleError(h.removeProgramAdmin))

		r.Post("/houses", apphttp.HandleError(h.createHouse))
		r.Put("/houses/{house}/config", apphttp.HandleError(h.updateHouse))
		r.Post("/houses/{house}/withdraw", apphttp.HandleError(h.withdrawHouseFees))
		r.Delete("/houses/{house}", apphttp.HandleError(h.closeHouse))
		r.Post("/houses/{house}/campaigns", apphttp.HandleError(h.createCampaign))

		r.Delete("/campaigns/{campaign}", apphttp.HandleError(h.closeCampaign))
		r.Post("/campaigns/{campaign}/games/start", apphttp.HandleError(h.startGame))
		r.Post("/campaigns/{campaign}/games/end", apphttp.HandleError(h.endGame))
		r.Post("/campaigns/{campaign}/stake/claim", apphttp.HandleError(h.claimStake))
		r.Post("/campaigns/{campaign}/player/close", apphttp.HandleError(h.closePlayer))
	})
}

func (h *HTTP) addProgramAdmin(w http.ResponseWriter, r *http.Request) error {
	var req game.ProgramAdminRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	caller, err := signer(r)
	if err != nil {
		return err
	}
	req.Caller = caller

	if err := h.service.AddProgramAdmin(r.Context(), &req); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) removeProgramAdmin(w http.ResponseWriter, r *http.Request) error {
	admin, err := pathAddress(r, "admin")
	if err != nil {
		return err
	}
	caller, err := signer(r)
	if err != nil {
		return err
	}

	if err := h.service.RemoveProgramAdmin(r.Context(), &game.ProgramAdminRequest{Caller: caller, Admin: admin}); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) createHouse(w http.ResponseWriter, r *http.Request) error {
	var req game.CreateHouseRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	caller, err := signer(r)
	if err != nil {
		return err
	}
	req.Caller = caller

	resp, err := h.service.CreateHouse(r.Context(), &req)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusCreated, game.NewHouseView(resp))
	return nil
}

func (h *HTTP) updateHouse(w http.ResponseWriter, r *http.Request) error {
	var req game.UpdateHouseRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	if err := h.bind(r, &req.Caller, "house", &req.House); err != nil {
		return err
	}

	resp, err := h.service.UpdateHouse(r.Context(), &req)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, game.NewHouseView(resp))
	return nil
}

func (h *HTTP) withdrawHouseFees(w http.ResponseWriter, r *http.Request) error {
	var req game.HouseRequest
	if err := h.bind(r, &req.Caller, "house", &req.House); err != nil {
		return err
	}

	resp, err := h.service.WithdrawHouseFees(r.Context(), &req)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) closeHouse(w http.ResponseWriter, r *http.Request) error {
	var req game.HouseRequest
	if err := h.bind(r, &req.Caller, "house", &req.House); err != nil {
		return err
	}

	resp, err := h.service.CloseHouse(r.Context(), &req)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) createCampaign(w http.ResponseWriter, r *http.Request) error {
	var req game.CreateCampaignRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	if err := h.bind(r, &req.Caller, "house", &req.House); err != nil {
		return err
	}

	resp, err := h.service.CreateCampaign(r.Context(), &req)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) closeCampaign(w http.ResponseWriter, r *http.Request) error {
	var req game.CampaignRequest
	if err := h.bind(r, &req.Caller, "campaign", &req.Campaign); err != nil {
		return err
	}

	resp, err := h.service.CloseCampaign(r.Context(), &req)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) startGame(w http.ResponseWriter, r *http.Request) error {
	var req game.StartGameRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	if err := h.bind(r, &req.Caller, "campaign", &req.Campaign); err != nil {
		return err
	}

	resp, err := h.service.StartGame(r.Context(), &req)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) endGame(w http.ResponseWriter, r *http.Request) error {
	var req game.EndGameRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	if err := h.bind(r, &req.Caller, "campaign", &req.Campaign); err != nil {
		return err
	}
	req.Oracle = auth.OracleFromContext(r.Context())

	resp, err := h.service.EndGame(r.Context(), &req)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) claimStake(w http.ResponseWriter, r *http.Request) error {
	var req game.PlayerRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	if err := h.bind(r, &req.Caller, "campaign", &req.Campaign); err != nil {
		return err
	}

	resp, err := h.service.ClaimStake(r.Context(), &req)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) closePlayer(w http.ResponseWriter, r *http.Request) error {
	var req game.PlayerRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	if err := h.bind(r, &req.Caller, "campaign", &req.Campaign); err != nil {
		return err
	}

	if err := h.service.ClosePlayer(r.Context(), &req); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) getHouse(w http.ResponseWriter, r *http.Request) error {
	id, err := pathAddress(r, "house")
	if err != nil {
		return err
	}
	resp, err := h.service.GetHouse(r.Context(), id)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getCampaign(w http.ResponseWriter, r *http.Request) error {
	id, err := pathAddress(r, "campaign")
	if err != nil {
		return err
	}
	resp, err := h.service.GetCampaign(r.Context(), id)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getPlayer(w http.ResponseWriter, r *http.Request) error {
	campaignID, err := pathAddress(r, "campaign")
	if err != nil {
		return err
	}
	identityKey, err := pathAddress(r, "identity")
	if err != nil {
		return err
	}
	resp, err := h.service.GetPlayer(r.Context(), campaignID, identityKey)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

// bind fills the caller from the auth context and the target from the URL.
func (h *HTTP) bind(r *http.Request, caller *common.Address, param string, target *common.Address) error {
	c, err := signer(r)
	if err != nil {
		return err
	}
	t, err := pathAddress(r, param)
	if err != nil {
		return err
	}
	*caller, *target = c, t
	return nil
}

func signer(r *http.Request) (common.Address, error) {
	caller, ok := auth.SignerFromContext(r.Context())
	if !ok {
		return common.Address{}, apperrors.UnAuthorizedError(errMissingSigner, errMissingSigner.Error())
	}
	return caller, nil
}

func pathAddress(r *http.Request, param string) (common.Address, error) {
	raw := chi.URLParam(r, param)
	if !common.IsHexAddress(raw) {
		return common.Address{}, apperrors.BadRequestError(nil, "invalid "+param+" address")
	}
	return common.HexToAddress(raw), nil
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("Failed to encode response", zap.Error(err))
	}
}
