package dbbadger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/auctionward/auctiond/internal/core/domain"
	"github.com/auctionward/auctiond/internal/core/ports"
)

const (
	// EngineStoreDir is the subdirectory holding the auction engine store.
	EngineStoreDir = "engine"
)

// RepoManager is the badger implementation of ports.RepoManager. Every
// repository shares a single badgerhold store so that one badger transaction
// can span auction, ledger, fee and randomness writes.
type RepoManager struct {
	store *badgerhold.Store

	auctionRepository    domain.AuctionRepository
	ledgerRepository     domain.LedgerRepository
	feeRepository        domain.FeeRepository
	randomnessRepository domain.RandomnessRepository
}

// NewRepoManager opens (or creates if not exists) the badger store on disk.
// It expects a base data dir and an optional logger.
func NewRepoManager(baseDbDir string, logger badger.Logger) (ports.RepoManager, error) {
	store, err := createDb(fmt.Sprintf("%s/%s", baseDbDir, EngineStoreDir), logger)
	if err != nil {
		return nil, fmt.Errorf("opening engine db: %w", err)
	}

	return &RepoManager{
		store:                store,
		auctionRepository:    newAuctionRepositoryImpl(store),
		ledgerRepository:     newLedgerRepositoryImpl(store),
		feeRepository:        newFeeRepositoryImpl(store),
		randomnessRepository: newRandomnessRepositoryImpl(store),
	}, nil
}

func (d *RepoManager) AuctionRepository() domain.AuctionRepository {
	return d.auctionRepository
}

func (d *RepoManager) LedgerRepository() domain.LedgerRepository {
	return d.ledgerRepository
}

func (d *RepoManager) FeeRepository() domain.FeeRepository {
	return d.feeRepository
}

func (d *RepoManager) RandomnessRepository() domain.RandomnessRepository {
	return d.randomnessRepository
}

func (d *RepoManager) Close() {
	d.store.Close()
}

// RunTransaction runs the handler within a single badger transaction, passed
// down to the repositories through the context.
func (d *RepoManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	var res interface{}
	run := d.store.Badger().Update
	if readOnly {
		run = d.store.Badger().View
	}

	if err := run(func(tx *badger.Txn) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		r, err := handler(txCtx)
		if err != nil {
			return err
		}
		res = r
		return nil
	}); err != nil {
		return nil, err
	}
	return res, nil
}

// JSONEncode is a custom JSON based encoder for badger
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)

	err := en.Encode(value)
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger
func JSONDecode(data []byte, value interface{}) error {
	var buff bytes.Buffer
	de := json.NewDecoder(&buff)

	_, err := buff.Write(data)
	if err != nil {
		return err
	}

	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (db *badgerhold.Store, err error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	db, err = badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})

	return
}
