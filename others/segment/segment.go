// Command segment demonstrates a MySQL-backed block allocator for callers
// that need dense, ordered int64 identifiers instead of UUIDs. Blocks of IDs
// are reserved transactionally per tag and handed out lock-free, with the
// next block prefetched in the background before the current one runs dry.
//
// Required table:
//
//	CREATE TABLE id_alloc (
//	    tag     VARCHAR(64) PRIMARY KEY,
//	    max_id  BIGINT NOT NULL,
//	    step    INT NOT NULL
//	);
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Block is one reserved ID range: (Start, End] with Cursor walking it.
type Block struct {
	Start  int64 // exclusive
	End    int64 // inclusive
	Size   int
	Cursor int64 // accessed atomically
}

// Remaining returns how many IDs are left in the block.
func (b *Block) Remaining() int64 {
	return b.End - atomic.LoadInt64(&b.Cursor)
}

// prefetchRatio: a refill is triggered once this fraction of a block remains.
const prefetchRatio = 0.2

// blockPair serves IDs for one tag from an active block while a standby
// block is fetched in the background.
type blockPair struct {
	tag string

	active  *Block
	standby *Block

	standbyReady bool
	fetching     int32 // CAS guard for the prefetch goroutine
	mu           sync.Mutex

	store *allocStore
}

func newBlockPair(tag string, store *allocStore) *blockPair {
	return &blockPair{tag: tag, store: store}
}

func (p *blockPair) init() error {
	blk, err := p.store.reserveBlock(p.tag)
	if err != nil {
		return err
	}
	p.active = blk
	return nil
}

// next hands out the next ID, swapping in the standby block or falling back
// to a synchronous reservation when the active one is exhausted.
func (p *blockPair) next() (int64, error) {
	if p.active == nil {
		return 0, errors.New("block pair not initialized")
	}

	// Fast path: bump the cursor of the active block.
	if id := atomic.AddInt64(&p.active.Cursor, 1); id <= p.active.End {
		p.maybePrefetch()
		return id, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another goroutine may have swapped blocks while we waited.
	if id := atomic.AddInt64(&p.active.Cursor, 1); id <= p.active.End {
		return id, nil
	}

	if p.standbyReady && p.standby != nil {
		p.active = p.standby
		p.standby = nil
		p.standbyReady = false
		return atomic.AddInt64(&p.active.Cursor, 1), nil
	}

	// No standby available: reserve synchronously.
	blk, err := p.store.reserveBlock(p.tag)
	if err != nil {
		return 0, err
	}
	p.active = blk
	p.standby = nil
	p.standbyReady = false
	return atomic.AddInt64(&p.active.Cursor, 1), nil
}

// maybePrefetch kicks off a background reservation once the active block is
// running low. At most one fetch runs at a time.
func (p *blockPair) maybePrefetch() {
	if p.standbyReady || atomic.LoadInt32(&p.fetching) == 1 {
		return
	}
	if p.active.Remaining() > int64(float64(p.active.Size)*prefetchRatio) {
		return
	}
	if !atomic.CompareAndSwapInt32(&p.fetching, 0, 1) {
		return
	}

	go func() {
		defer atomic.StoreInt32(&p.fetching, 0)

		blk, err := p.store.reserveBlock(p.tag)
		if err != nil {
			log.Printf("prefetch for tag %q failed: %v", p.tag, err)
			return
		}

		p.mu.Lock()
		p.standby = blk
		p.standbyReady = true
		p.mu.Unlock()
	}()
}

// allocStore performs the transactional block reservations against MySQL.
type allocStore struct {
	db *sql.DB
}

func newAllocStore(dsn string) (*allocStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return &allocStore{db: db}, nil
}

// reserveBlock advances max_id by step for the tag and returns the freshly
// reserved range. The UPDATE-then-SELECT inside one transaction guarantees
// each caller gets a disjoint block.
func (s *allocStore) reserveBlock(tag string) (*Block, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	ctx := context.Background()
	if _, err = tx.ExecContext(ctx,
		"UPDATE id_alloc SET max_id = max_id + step WHERE tag = ?", tag); err != nil {
		return nil, err
	}

	var maxID int64
	var step int
	if err = tx.QueryRowContext(ctx,
		"SELECT max_id, step FROM id_alloc WHERE tag = ?", tag).Scan(&maxID, &step); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	start := maxID - int64(step)
	return &Block{
		Start:  start,
		End:    maxID,
		Size:   step,
		Cursor: start,
	}, nil
}

// Allocator maintains one blockPair per tag and is the entry point callers use.
type Allocator struct {
	store *allocStore
	pairs map[string]*blockPair
	mu    sync.RWMutex
}

// NewAllocator connects to MySQL with the given DSN.
func NewAllocator(dsn string) (*Allocator, error) {
	store, err := newAllocStore(dsn)
	if err != nil {
		return nil, err
	}
	return &Allocator{
		store: store,
		pairs: make(map[string]*blockPair),
	}, nil
}

// NextID returns the next unique ID for the tag, creating the tag's block
// pair on first use. Safe for concurrent callers.
func (a *Allocator) NextID(tag string) (int64, error) {
	a.mu.RLock()
	pair, ok := a.pairs[tag]
	a.mu.RUnlock()
	if ok {
		return pair.next()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if pair, ok = a.pairs[tag]; ok {
		return pair.next()
	}

	pair = newBlockPair(tag, a.store)
	if err := pair.init(); err != nil {
		return 0, fmt.Errorf("init block pair for %q: %w", tag, err)
	}
	a.pairs[tag] = pair
	return pair.next()
}

func main() {
	// Adjust the DSN for your environment before running.
	dsn := "ids:ids@tcp(127.0.0.1:3306)/ids_demo?parseTime=true"

	alloc, err := NewAllocator(dsn)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("allocator started")

	var wg sync.WaitGroup
	start := time.Now()

	const workers = 10
	const perWorker = 500
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if _, err := alloc.NextID("order-service"); err != nil {
					log.Printf("allocation error: %v", err)
				}
			}
		}()
	}

	wg.Wait()
	log.Printf("allocated %d IDs in %s", workers*perWorker, time.Since(start))
}
