package explorer

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hdwallet-settlement/internal/chain"
	"hdwallet-settlement/internal/core/domain"
)

type esploraTx struct {
	TxID string `json:"txid"`
	Vin  []struct {
		Prevout *struct {
			Address string `json:"scriptpubkey_address"`
		} `json:"prevout"`
	} `json:"vin"`
	Vout []struct {
		Address string `json:"scriptpubkey_address"`
		Value   int64  `json:"value"`
	} `json:"vout"`
	Fee    int64 `json:"fee"`
	Status struct {
		Confirmed   bool  `json:"confirmed"`
		BlockHeight int64 `json:"block_height"`
		BlockTime   int64 `json:"block_time"`
	} `json:"status"`
}

// Esplora implements ports.BlockchainClient against an Esplora REST API
// (blockstream.info, mempool.space).
type Esplora struct {
	baseURL string
	family  chain.Family
	fetch   *fetcher
}

// NewEsplora creates a client for baseURL. family converts satoshi amounts.
func NewEsplora(baseURL string, family chain.Family, httpClient HTTPClient, maxRetries uint64) *Esplora {
	return &Esplora{
		baseURL: strings.TrimRight(baseURL, "/"),
		family:  family,
		fetch:   newFetcher(httpClient, maxRetries),
	}
}

// AddressTransactions returns every transaction paying address, with the
// amount credited to address and its confirmation depth. Unconfirmed
// transactions report zero confirmations.
func (e *Esplora) AddressTransactions(ctx context.Context, address string) ([]domain.ObservedTransaction, error) {
	var txs []esploraTx
	if err := e.fetch.getJSON(ctx, e.baseURL+"/address/"+url.PathEscape(address)+"/txs", &txs, nil); err != nil {
		return nil, fmt.Errorf("esplora address txs: %w", err)
	}
	if len(txs) == 0 {
		return nil, nil
	}

	var tip int64
	for _, tx := range txs {
		if tx.Status.Confirmed {
			var err error
			if tip, err = e.tipHeight(ctx); err != nil {
				return nil, err
			}
			break
		}
	}
	return e.convert(txs, address, tip)
}

func (e *Esplora) convert(txs []esploraTx, address string, tip int64) ([]domain.ObservedTransaction, error) {
	out := make([]domain.ObservedTransaction, 0, len(txs))
	for _, tx := range txs {
		var sats int64
		for _, vout := range tx.Vout {
			if vout.Address == address {
				sats += vout.Value
			}
		}
		if sats <= 0 {
			// Spends from the address, not payments into it.
			continue
		}

		value, err := e.family.ParseAmount(strconv.FormatInt(sats, 10))
		if err != nil {
			return nil, fmt.Errorf("tx %s: %w", tx.TxID, err)
		}

		o := domain.ObservedTransaction{
			Hash:  tx.TxID,
			To:    address,
			Value: value,
		}
		for _, vin := range tx.Vin {
			if vin.Prevout != nil && vin.Prevout.Address != "" {
				o.From = vin.Prevout.Address
				break
			}
		}
		if tx.Fee > 0 {
			fee, err := e.family.ParseAmount(strconv.FormatInt(tx.Fee, 10))
			if err == nil {
				o.Fee = &fee
			}
		}
		if tx.Status.Confirmed {
			height := tx.Status.BlockHeight
			o.BlockNumber = &height
			if tip >= height {
				o.Confirmations = int(tip-height) + 1
			}
			if tx.Status.BlockTime > 0 {
				ts := time.Unix(tx.Status.BlockTime, 0).UTC()
				o.Timestamp = &ts
			}
		}
		out = append(out, o)
	}
	return out, nil
}

func (e *Esplora) tipHeight(ctx context.Context) (int64, error) {
	var height int64
	if err := e.fetch.getJSON(ctx, e.baseURL+"/blocks/tip/height", &height, nil); err != nil {
		return 0, fmt.Errorf("esplora tip height: %w", err)
	}
	return height, nil
}
