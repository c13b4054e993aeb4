package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hdwallet-settlement/internal/chain"
	"hdwallet-settlement/internal/core/domain"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
)

type etherscanResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type etherscanTx struct {
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Confirmations   string `json:"confirmations"`
	GasUsed         string `json:"gasUsed"`
	GasPrice        string `json:"gasPrice"`
	IsError         string `json:"isError"`
	ContractAddress string `json:"contractAddress"`
}

// ErrEtherscan is returned when the API answers with status "0" for a reason
// other than an empty history.
var ErrEtherscan = errors.New("etherscan error")

// Etherscan implements ports.BlockchainClient for ether (txlist) or one
// ERC-20 token (tokentx filtered by contract).
type Etherscan struct {
	baseURL  string
	apiKey   string
	contract string
	family   chain.Family
	gasUnit  chain.Family
	fetch    *fetcher
}

// NewEtherscan creates an ether client. family converts wei amounts.
func NewEtherscan(baseURL, apiKey string, family chain.Family, httpClient HTTPClient, maxRetries uint64) *Etherscan {
	return &Etherscan{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		family:  family,
		gasUnit: family,
		fetch:   newFetcher(httpClient, maxRetries),
	}
}

// NewEtherscanToken creates a client for the ERC-20 token at contract. Fees
// are paid in ether and are not reported for token transfers.
func NewEtherscanToken(baseURL, apiKey, contract string, family chain.Family, httpClient HTTPClient, maxRetries uint64) *Etherscan {
	return &Etherscan{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		contract: strings.ToLower(contract),
		family:   family,
		fetch:    newFetcher(httpClient, maxRetries),
	}
}

// AddressTransactions returns successful transfers into address.
func (e *Etherscan) AddressTransactions(ctx context.Context, address string) ([]domain.ObservedTransaction, error) {
	q := url.Values{}
	q.Set("module", "account")
	q.Set("address", address)
	q.Set("startblock", "0")
	q.Set("endblock", "99999999")
	q.Set("sort", "asc")
	if e.contract != "" {
		q.Set("action", "tokentx")
		q.Set("contractaddress", e.contract)
	} else {
		q.Set("action", "txlist")
	}
	if e.apiKey != "" {
		q.Set("apikey", e.apiKey)
	}

	var resp etherscanResponse
	var txs []etherscanTx
	check := func() error {
		txs = nil
		if resp.Status == "1" {
			if err := json.Unmarshal(resp.Result, &txs); err != nil {
				return backoff.Permanent(fmt.Errorf("decoding etherscan result: %w", err))
			}
			return nil
		}
		var reason string
		_ = json.Unmarshal(resp.Result, &reason)
		if strings.HasPrefix(resp.Message, "No transactions found") {
			return nil
		}
		err := fmt.Errorf("%w: %s: %s", ErrEtherscan, resp.Message, reason)
		if strings.Contains(strings.ToLower(reason), "rate limit") {
			return err
		}
		return backoff.Permanent(err)
	}
	if err := e.fetch.getJSON(ctx, e.baseURL+"?"+q.Encode(), &resp, check); err != nil {
		return nil, fmt.Errorf("etherscan %s: %w", q.Get("action"), err)
	}

	out := make([]domain.ObservedTransaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsError == "1" || !strings.EqualFold(tx.To, address) {
			continue
		}
		if e.contract != "" && !strings.EqualFold(tx.ContractAddress, e.contract) {
			continue
		}

		value, err := e.family.ParseAmount(tx.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s: %w", tx.Hash, err)
		}

		o := domain.ObservedTransaction{
			Hash:  tx.Hash,
			From:  tx.From,
			To:    tx.To,
			Value: value,
		}
		if n, err := strconv.Atoi(tx.Confirmations); err == nil && n > 0 {
			o.Confirmations = n
		}
		if n, err := strconv.ParseInt(tx.BlockNumber, 10, 64); err == nil && n > 0 {
			o.BlockNumber = &n
		}
		if n, err := strconv.ParseInt(tx.TimeStamp, 10, 64); err == nil && n > 0 {
			ts := time.Unix(n, 0).UTC()
			o.Timestamp = &ts
		}
		if e.gasUnit != nil {
			o.Fee = e.fee(tx)
		}
		out = append(out, o)
	}
	return out, nil
}

func (e *Etherscan) fee(tx etherscanTx) *decimal.Decimal {
	used, err := decimal.NewFromString(tx.GasUsed)
	if err != nil {
		return nil
	}
	price, err := decimal.NewFromString(tx.GasPrice)
	if err != nil {
		return nil
	}
	fee, err := e.gasUnit.ParseAmount(used.Mul(price).String())
	if err != nil {
		return nil
	}
	return &fee
}
