// Package transport exposes the registry over gRPC and a REST gateway.
package transport

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry"
	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

// RegistryHandler implements RegistryServiceServer on top of a Registry.
type RegistryHandler struct {
	registry Registry
	chain    Chain
	logger   *zap.Logger
}

// NewRegistryHandler returns a RegistryHandler. Calls execute in the block
// reported by chain at the time they arrive.
func NewRegistryHandler(reg Registry, chain Chain, logger *zap.Logger) (*RegistryHandler, error) {
	if reg == nil {
		return nil, errors.New("registry is required")
	}
	if chain == nil {
		return nil, errors.New("chain is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistryHandler{registry: reg, chain: chain, logger: logger}, nil
}

func (h *RegistryHandler) Commit(ctx context.Context, req *CommitRequest) (*ReceiptResponse, error) {
	call, err := h.newCall(req.CallEnvelope)
	if err != nil {
		return nil, err
	}
	hash, err := parseHash("commitment", req.Commitment)
	if err != nil {
		return nil, err
	}
	receipt, err := h.registry.Commit(ctx, call, hash)
	return h.respond(ctx, "commit", receipt, err)
}

func (h *RegistryHandler) Reveal(ctx context.Context, req *RevealRequest) (*ReceiptResponse, error) {
	call, err := h.newCall(req.CallEnvelope)
	if err != nil {
		return nil, err
	}
	nonce, err := parseHash("nonce", req.Nonce)
	if err != nil {
		return nil, err
	}
	receipt, err := h.registry.Reveal(ctx, call, nonce, req.Name)
	return h.respond(ctx, "reveal", receipt, err)
}

func (h *RegistryHandler) Renew(ctx context.Context, req *RenewRequest) (*ReceiptResponse, error) {
	call, err := h.newCall(req.CallEnvelope)
	if err != nil {
		return nil, err
	}
	receipt, err := h.registry.Renew(ctx, call, req.Name)
	return h.respond(ctx, "renew", receipt, err)
}

func (h *RegistryHandler) UnlockDeposit(ctx context.Context, req *UnlockDepositRequest) (*ReceiptResponse, error) {
	call, err := h.newCall(req.CallEnvelope)
	if err != nil {
		return nil, err
	}
	receipt, err := h.registry.UnlockDeposit(ctx, call)
	return h.respond(ctx, "unlock_deposit", receipt, err)
}

func (h *RegistryHandler) WithdrawFees(ctx context.Context, req *WithdrawFeesRequest) (*ReceiptResponse, error) {
	call, err := h.newCall(req.CallEnvelope)
	if err != nil {
		return nil, err
	}
	receipt, err := h.registry.WithdrawFees(ctx, call)
	return h.respond(ctx, "withdraw_fees", receipt, err)
}

// Digest never fails on well-formed input.
func (h *RegistryHandler) Digest(_ context.Context, req *DigestRequest) (*DigestResponse, error) {
	nonce, err := parseHash("nonce", req.Nonce)
	if err != nil {
		return nil, err
	}
	sender, err := parseAddress("sender", req.Sender)
	if err != nil {
		return nil, err
	}
	return &DigestResponse{Digest: registry.Digest(nonce, req.Name, sender).Hex()}, nil
}

func (h *RegistryHandler) ResolveName(_ context.Context, req *ResolveNameRequest) (*ResolveNameResponse, error) {
	addr, err := parseAddress("address", req.Address)
	if err != nil {
		return nil, err
	}
	return &ResolveNameResponse{
		Address: addr.Hex(),
		Name:    h.registry.ResolveName(addr, h.chain.Head().Time),
	}, nil
}

func (h *RegistryHandler) Quote(_ context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	fee, err := h.registry.RegistrationFee(req.Name)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	total, err := h.registry.RequiredPayment(req.Name)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &QuoteResponse{
		Name:    req.Name,
		Fee:     fee.Dec(),
		Deposit: h.registry.Params().Deposit.Dec(),
		Total:   total.Dec(),
	}, nil
}

func (h *RegistryHandler) Head(_ context.Context, _ *HeadRequest) (*HeadResponse, error) {
	head := h.chain.Head()
	return &HeadResponse{Number: head.Number, Time: head.Time}, nil
}

func (h *RegistryHandler) newCall(env CallEnvelope) (model.Call, error) {
	caller, err := parseAddress("caller", env.Caller)
	if err != nil {
		return model.Call{}, err
	}
	value, err := parseWei("value", env.Value)
	if err != nil {
		return model.Call{}, err
	}
	gasPrice, err := parseWei("gas_price", env.GasPrice)
	if err != nil {
		return model.Call{}, err
	}
	return model.Call{
		Caller:   caller,
		Value:    value,
		GasPrice: gasPrice,
		Block:    h.chain.Head(),
	}, nil
}

func (h *RegistryHandler) respond(ctx context.Context, operation string, receipt *model.Receipt, err error) (*ReceiptResponse, error) {
	if err != nil {
		if registry.Code(err) == "" {
			h.logger.Error("registry call failed", zap.String("operation", operation), zap.Error(err))
		}
		return nil, toStatus(ctx, err)
	}
	return newReceiptResponse(receipt), nil
}

func newReceiptResponse(receipt *model.Receipt) *ReceiptResponse {
	resp := &ReceiptResponse{
		BlockNumber: receipt.Block.Number,
		BlockTime:   receipt.Block.Time,
		Events:      make([]Event, 0, len(receipt.Events)),
		Transfers:   make([]Transfer, 0, len(receipt.Transfers)),
	}
	for _, ev := range receipt.Events {
		out := Event{
			Kind:      string(ev.Kind),
			Account:   ev.Account.Hex(),
			Name:      ev.Name,
			ExpiresAt: ev.ExpiresAt,
		}
		if ev.Amount != nil {
			out.Amount = ev.Amount.Dec()
		}
		resp.Events = append(resp.Events, out)
	}
	for _, tr := range receipt.Transfers {
		resp.Transfers = append(resp.Transfers, Transfer{To: tr.To.Hex(), Amount: tr.Amount.Dec()})
	}
	return resp
}

func parseAddress(field, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, status.Errorf(codes.InvalidArgument, "%s: invalid address %q", field, value)
	}
	return common.HexToAddress(value), nil
}

func parseHash(field, value string) (common.Hash, error) {
	raw, err := hexutil.Decode(value)
	if err != nil {
		return common.Hash{}, status.Errorf(codes.InvalidArgument, "%s: %v", field, err)
	}
	if len(raw) != common.HashLength {
		return common.Hash{}, status.Errorf(codes.InvalidArgument, "%s: want %d bytes, got %d", field, common.HashLength, len(raw))
	}
	return common.BytesToHash(raw), nil
}

func parseWei(field, value string) (*uint256.Int, error) {
	if value == "" {
		return nil, nil
	}
	amount, err := uint256.FromDecimal(value)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("%s: %v", field, err))
	}
	return amount, nil
}
