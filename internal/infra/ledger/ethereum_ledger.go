// Package ledger contains the on-chain UtilCoin mirror built on go-ethereum.
package ledger

import (
	"context"
	"crypto/ecdsa"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

const (
	defaultChainTimeout = 15 * time.Second
	mintGasLimit        = 120_000

	// Minimal ABI for the UtilCoin contract's mint entry point.
	utilCoinABI = `[{"name":"mint","type":"function","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}]`
)

// tokenDecimals converts UtilCoin amounts to the contract's 18-decimal representation.
var tokenDecimals = new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

// ethereumLedger implements service.RewardLedger against an EVM chain.
type ethereumLedger struct {
	client   *ethclient.Client
	contract common.Address
	adminKey *ecdsa.PrivateKey
	chainID  *big.Int
	mintABI  abi.ABI
	timeout  time.Duration
	logger   *slog.Logger
}

// disabledLedger is used when no chain is configured. Every mint fails
// with a stable error; callers treat minting as best-effort anyway.
type disabledLedger struct{}

func (disabledLedger) Mint(context.Context, string, float64) (string, error) {
	return "", errors.New("on-chain ledger is not configured")
}

// NewEthereumLedger is the constructor for ethereumLedger. With no chain
// configuration it returns a disabled ledger instead of failing startup.
func NewEthereumLedger(cfg *config.Config, logger *slog.Logger) (service.RewardLedger, error) {
	if cfg.Chain == nil || cfg.Chain.RPCURL == "" {
		logger.Info("On-chain ledger disabled, minting is off")

		return disabledLedger{}, nil
	}

	client, err := ethclient.Dial(cfg.Chain.RPCURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial chain RPC")
	}

	adminKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.Chain.AdminPrivateKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse admin private key")
	}

	mintABI, err := abi.JSON(strings.NewReader(utilCoinABI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse UtilCoin ABI")
	}

	timeout := cfg.Chain.Timeout
	if timeout <= 0 {
		timeout = defaultChainTimeout
	}

	return &ethereumLedger{
		client:   client,
		contract: common.HexToAddress(cfg.Chain.ContractAddress),
		adminKey: adminKey,
		chainID:  big.NewInt(cfg.Chain.ChainID),
		mintABI:  mintABI,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// Mint submits a mint transaction crediting the amount to the wallet
// address and returns the transaction hash. It does not wait for the
// transaction to be mined; the database balance is authoritative.
func (l *ethereumLedger) Mint(ctx context.Context, walletAddress string, amount float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	if !common.IsHexAddress(walletAddress) {
		return "", errors.Errorf("invalid wallet address: %s", walletAddress)
	}
	to := common.HexToAddress(walletAddress)

	data, err := l.mintABI.Pack("mint", to, toTokenUnits(amount))
	if err != nil {
		return "", errors.Wrap(err, "failed to pack mint call")
	}

	from := crypto.PubkeyToAddress(l.adminKey.PublicKey)
	nonce, err := l.client.PendingNonceAt(ctx, from)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch admin nonce")
	}

	gasPrice, err := l.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch gas price")
	}

	tx := types.NewTransaction(nonce, l.contract, big.NewInt(0), mintGasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(l.chainID), l.adminKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign mint transaction")
	}

	if err := l.client.SendTransaction(ctx, signedTx); err != nil {
		return "", errors.Wrap(err, "failed to send mint transaction")
	}

	hash := signedTx.Hash().Hex()
	l.logger.Debug("Submitted mint transaction",
		slog.String("to", walletAddress),
		slog.Float64("amount", amount),
		slog.String("txHash", hash))

	return hash, nil
}

// toTokenUnits converts a UtilCoin amount to 18-decimal integer units.
func toTokenUnits(amount float64) *big.Int {
	scaled := new(big.Float).Mul(big.NewFloat(amount), tokenDecimals)
	units, _ := scaled.Int(nil)

	return units
}
