package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"hash/fnv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"crypto_compass_backend/internal/config"
	"crypto_compass_backend/internal/model"
	"crypto_compass_backend/internal/repository"
	"crypto_compass_backend/internal/util"
	"crypto_compass_backend/pkg/logger"
	"crypto_compass_backend/pkg/monitoring"
	"crypto_compass_backend/pkg/tracing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MintPayload is what a Minter submits on chain.
type MintPayload struct {
	To          string `json:"to"`
	ChainID     int64  `json:"chainId"`
	Contract    string `json:"contract"`
	ArchetypeID string `json:"archetypeId"`
	SVG         string `json:"svg"`
	TokenURI    string `json:"tokenUri"`
}

type TxResult struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash,omitempty"`
	TokenID         string `json:"tokenId,omitempty"`
	BlockNumber     uint64 `json:"blockNumber,omitempty"`
	ExplorerURL     string `json:"explorerUrl,omitempty"`
	OpenSeaURL      string `json:"openseaUrl,omitempty"`
	Error           string `json:"error,omitempty"`
	Code            int    `json:"code,omitempty"`
}

// Minter submits a mint transaction.
type Minter interface {
	SubmitMint(ctx context.Context, p MintPayload) (*TxResult, error)
}

// Provider error codes reported by wallets and nodes.
const (
	CodeUserRejected      = 4001
	CodeInsufficientFunds = -32000
)

// MintError is a failure reported by the chain or the relay.
type MintError struct {
	Code    int
	Message string
	Network bool
}

func (e *MintError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("mint error %d: %s", e.Code, e.Message)
	}
	return "mint error: " + e.Message
}

// MintErrorMessage turns a mint failure into the text shown to the user.
func MintErrorMessage(err error) string {
	var me *MintError
	if !errors.As(err, &me) {
		if err == nil {
			return "Eroare necunoscută la mintarea NFT-ului"
		}
		return err.Error()
	}
	switch {
	case me.Code == CodeUserRejected:
		return "Tranzacția a fost anulată de utilizator"
	case me.Code == CodeInsufficientFunds:
		return "Fonduri insuficiente pentru tranzacție"
	case strings.Contains(me.Message, "execution reverted"):
		return "Contractul a respins tranzacția. Verificați parametrii."
	case me.Network || strings.Contains(strings.ToLower(me.Message), "network"):
		return "Problemă de conectare la rețea. Încercați din nou."
	case me.Message != "":
		return me.Message
	default:
		return "Eroare necunoscută la mintarea NFT-ului"
	}
}

// RelayMinter posts mint requests to a signing relay over HTTP.
type RelayMinter struct {
	URL    string
	APIKey string
	Client *http.Client
}

func NewRelayMinter(cfg config.NFTConfig) *RelayMinter {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RelayMinter{
		URL:    cfg.RelayURL,
		APIKey: cfg.RelayAPIKey,
		Client: &http.Client{Timeout: timeout},
	}
}

type relayResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash"`
	TokenID         string `json:"tokenId"`
	BlockNumber     uint64 `json:"blockNumber"`
	Error           *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (m *RelayMinter) SubmitMint(ctx context.Context, p MintPayload) (*TxResult, error) {
	jsonData, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.URL, bytes.NewReader(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", util.MimeJSON)
	if m.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.APIKey)
	}

	resp, err := m.Client.Do(req)
	if err != nil {
		return nil, &MintError{Message: "network error: " + err.Error(), Network: true}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var rr relayResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, &MintError{Message: fmt.Sprintf("relay error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}
	if rr.Error != nil {
		return nil, &MintError{Code: rr.Error.Code, Message: rr.Error.Message}
	}
	if resp.StatusCode != http.StatusOK || !rr.Success {
		return nil, &MintError{Message: fmt.Sprintf("relay rejected mint (status %d)", resp.StatusCode)}
	}

	return &TxResult{
		Success:         true,
		TransactionHash: rr.TransactionHash,
		TokenID:         rr.TokenID,
		BlockNumber:     rr.BlockNumber,
	}, nil
}

// MintService turns a session's last result into an NFT.
type MintService struct {
	Quiz    *QuizService
	Mints   *repository.MintRepository
	Storage *StorageService
	Minter  Minter

	cfg     atomic.Pointer[config.NFTConfig]
	now     func() time.Time
	wallets [walletLockStripes]sync.Mutex
}

const walletLockStripes = 64

// walletLock serialises mints for one wallet so the already-minted check
// and the record of a successful mint cannot interleave.
func (s *MintService) walletLock(address string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(address))
	return &s.wallets[h.Sum32()%walletLockStripes]
}

func NewMintService(quiz *QuizService, mints *repository.MintRepository, storage *StorageService, minter Minter, cfg config.NFTConfig) *MintService {
	s := &MintService{Quiz: quiz, Mints: mints, Storage: storage, Minter: minter, now: time.Now}
	s.UpdateConfig(cfg)
	return s
}

// UpdateConfig swaps the NFT settings, e.g. after a config reload.
func (s *MintService) UpdateConfig(cfg config.NFTConfig) {
	s.cfg.Store(&cfg)
}

func (s *MintService) Config() config.NFTConfig {
	return *s.cfg.Load()
}

func (s *MintService) Enabled() bool {
	return s.cfg.Load().Enabled
}

// Metadata previews the token metadata for the session's last result.
func (s *MintService) Metadata(ctx context.Context, sessionID string) (*NFTMetadata, error) {
	r, _, err := s.Quiz.LastResult(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	svg, err := RenderNFTSVG(r, now)
	if err != nil {
		return nil, err
	}
	m := BuildNFTMetadata(r, svg, "", s.Config().ExternalURL, now)
	return &m, nil
}

type MintOutcome struct {
	Record *model.MintRecord `json:"record"`
	Tx     *TxResult         `json:"transaction"`
}

// Mint submits the last result of a session for wallet. Every attempt is
// recorded, failed ones included.
func (s *MintService) Mint(ctx context.Context, sessionID, wallet string) (out *MintOutcome, err error) {
	ctx, span := tracing.StartSpan(ctx, "MintService.Mint", sessionID)
	defer func() { tracing.EndSpan(span, err) }()

	cfg := s.Config()
	if !cfg.Enabled {
		return nil, util.ErrMintingDisabled
	}
	address, err := util.NormalizeAddress(wallet)
	if err != nil {
		return nil, err
	}
	r, resultID, err := s.Quiz.LastResult(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lock := s.walletLock(address)
	lock.Lock()
	defer lock.Unlock()

	minted, err := s.Mints.SuccessfulForWallet(address)
	if err != nil {
		return nil, err
	}
	if minted {
		return nil, util.ErrAlreadyMinted
	}

	now := s.now()
	svg, err := RenderNFTSVG(r, now)
	if err != nil {
		return nil, err
	}

	rec := &model.MintRecord{
		SessionID:     sessionID,
		ResultID:      resultID,
		WalletAddress: address,
		ArchetypeID:   r.Archetype.ID,
		ChainID:       cfg.ChainID,
		Status:        model.MintStatusFailed,
	}

	if s.Storage != nil {
		key := fmt.Sprintf("nft/%s/%s.svg", sessionID, uuid.NewString())
		if url, err := s.Storage.UploadBytes(ctx, key, svg, util.MimeSVG); err != nil {
			logger.Log.Warn("Failed to upload NFT image", zap.String("session", sessionID), zap.Error(err))
		} else {
			rec.ImageURL = url
		}
	}

	meta := BuildNFTMetadata(r, svg, "", cfg.ExternalURL, now)
	uri, err := TokenURI(meta)
	if err != nil {
		return nil, err
	}

	tx, mintErr := s.Minter.SubmitMint(ctx, MintPayload{
		To:          address,
		ChainID:     cfg.ChainID,
		Contract:    cfg.ContractAddress,
		ArchetypeID: r.Archetype.ID,
		SVG:         string(svg),
		TokenURI:    uri,
	})
	if mintErr == nil && (tx == nil || !tx.Success) {
		msg := ""
		if tx != nil {
			msg = tx.Error
		}
		mintErr = &MintError{Message: msg}
	}

	if mintErr != nil {
		msg := MintErrorMessage(mintErr)
		rec.Error = msg
		tx = &TxResult{Success: false, Error: msg}
		var me *MintError
		if errors.As(mintErr, &me) {
			tx.Code = me.Code
		}
	} else {
		rec.Status = model.MintStatusSuccess
		rec.TransactionHash = tx.TransactionHash
		rec.TokenID = tx.TokenID
		s.fillLinks(tx, cfg)
	}

	if err := s.Mints.Create(rec); err != nil {
		logger.Log.Warn("Failed to record mint attempt", zap.String("session", sessionID), zap.Error(err))
	}
	monitoring.MintAttempts.WithLabelValues(rec.Status).Inc()

	out = &MintOutcome{Record: rec, Tx: tx}
	if mintErr != nil {
		logger.Log.Info("NFT mint failed",
			zap.String("session", sessionID),
			zap.String("wallet", address),
			zap.Error(mintErr))
		return out, fmt.Errorf("%w: %s", util.ErrMintFailed, rec.Error)
	}
	logger.Log.Info("NFT minted",
		zap.String("session", sessionID),
		zap.String("wallet", address),
		zap.String("tx", tx.TransactionHash))
	return out, nil
}

func (s *MintService) fillLinks(tx *TxResult, cfg config.NFTConfig) {
	if tx.ExplorerURL == "" && cfg.ExplorerURL != "" && tx.TransactionHash != "" {
		tx.ExplorerURL = strings.TrimSuffix(cfg.ExplorerURL, "/") + "/tx/" + tx.TransactionHash
	}
	if tx.OpenSeaURL == "" && cfg.OpenSeaURL != "" && tx.TokenID != "" {
		tx.OpenSeaURL = fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(cfg.OpenSeaURL, "/"), cfg.ContractAddress, tx.TokenID)
	}
}

func (s *MintService) ListMints(sessionID string) ([]model.MintRecord, error) {
	return s.Mints.ListBySession(sessionID)
}
