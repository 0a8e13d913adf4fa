// Command snowflake demonstrates a snowflake-style int64 ID generator whose
// worker ID is registered in ZooKeeper, for deployments that need compact
// time-ordered identifiers across many nodes. Layout of each ID:
//
//	| 1 bit 0 | 41 bits ms since epoch | 10 bits worker | 12 bits sequence |
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"
)

const (
	customEpoch int64 = 1672531200000 // 2023-01-01 00:00:00 UTC

	workerBits   = 10 // up to 1024 nodes
	sequenceBits = 12 // up to 4096 IDs per node per millisecond

	workerShift    = sequenceBits
	timestampShift = sequenceBits + workerBits
	sequenceMax    = int64(1)<<sequenceBits - 1
	workerMax      = int64(1)<<workerBits - 1

	zkRoot = "/snowflake"

	// Clock rollbacks up to this many milliseconds are waited out; anything
	// larger refuses to generate IDs.
	rollbackTolerance = 5
)

// workerState is the per-node record kept in ZooKeeper and the local cache
// file, used to recover the worker ID and to detect clock rollback.
type workerState struct {
	WorkerID   int64 `json:"worker_id"`
	LastMillis int64 `json:"last_millis"`
	Registered int64 `json:"registered"`
}

// Node generates snowflake IDs for one worker.
type Node struct {
	mu         sync.Mutex
	lastMillis int64
	sequence   int64
	workerID   int64

	conn    *zk.Conn
	service string
	port    int
}

// NewNode connects to ZooKeeper, recovers or assigns a worker ID, and starts
// the heartbeat goroutine.
func NewNode(servers []string, service string, port int) (*Node, error) {
	n := &Node{service: service, port: port}

	conn, _, err := zk.Connect(servers, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("connect zookeeper: %w", err)
	}
	n.conn = conn

	id, err := n.register()
	if err != nil {
		return nil, err
	}
	n.workerID = id
	log.Printf("snowflake node ready, workerID=%d", id)

	go n.heartbeat()
	return n, nil
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func (n *Node) nodePath() string {
	return fmt.Sprintf("%s/%s/node-%d", zkRoot, n.service, n.port)
}

// register recovers the worker ID from ZooKeeper or the local cache, falling
// back to a port-derived assignment for first-time nodes. A system clock
// behind the recorded state is refused outright.
func (n *Node) register() (int64, error) {
	n.ensurePath(zkRoot)
	n.ensurePath(fmt.Sprintf("%s/%s", zkRoot, n.service))

	path := n.nodePath()
	exists, _, err := n.conn.Exists(path)
	if err != nil {
		return 0, fmt.Errorf("check node: %w", err)
	}

	var state workerState
	if exists {
		data, _, err := n.conn.Get(path)
		if err != nil {
			return 0, fmt.Errorf("read node: %w", err)
		}
		if err := json.Unmarshal(data, &state); err != nil {
			return 0, fmt.Errorf("decode node state: %w", err)
		}
		if nowMillis() < state.LastMillis {
			return 0, fmt.Errorf("clock behind recorded state: %d < %d", nowMillis(), state.LastMillis)
		}
		log.Printf("recovered workerID %d from zookeeper", state.WorkerID)
	} else {
		cached, err := n.loadCache()
		switch {
		case err == nil:
			if nowMillis() < cached.LastMillis {
				return 0, fmt.Errorf("clock behind cached state: %d < %d", nowMillis(), cached.LastMillis)
			}
			state.WorkerID = cached.WorkerID
			log.Printf("recovered workerID %d from local cache", state.WorkerID)
		default:
			state.WorkerID = int64(n.port) & workerMax
		}
		state.Registered = nowMillis()
	}

	state.LastMillis = nowMillis()
	data, err := json.Marshal(state)
	if err != nil {
		return 0, err
	}
	if exists {
		_, err = n.conn.Set(path, data, -1)
	} else {
		_, err = n.conn.Create(path, data, 0, zk.WorldACL(zk.PermAll))
	}
	if err != nil {
		return 0, fmt.Errorf("register node: %w", err)
	}

	n.saveCache(state)
	return state.WorkerID, nil
}

// NextID generates the next snowflake ID.
func (n *Node) NextID() (int64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := nowMillis()

	if now < n.lastMillis {
		offset := n.lastMillis - now
		if offset > rollbackTolerance {
			return 0, fmt.Errorf("clock moved backwards by %d ms, refusing to generate", offset)
		}
		time.Sleep(time.Duration(offset) * time.Millisecond)
		now = nowMillis()
		if now < n.lastMillis {
			return 0, fmt.Errorf("clock still behind after waiting, refusing to generate")
		}
	}

	if now == n.lastMillis {
		n.sequence = (n.sequence + 1) & sequenceMax
		if n.sequence == 0 {
			// Per-millisecond capacity exhausted, spin to the next tick.
			for now <= n.lastMillis {
				now = nowMillis()
			}
		}
	} else {
		n.sequence = 0
	}

	n.lastMillis = now

	id := (now-customEpoch)<<timestampShift |
		n.workerID<<workerShift |
		n.sequence
	return id, nil
}

// heartbeat periodically refreshes this node's state in ZooKeeper and the
// local cache. ZooKeeper write errors are tolerated; the next tick retries.
func (n *Node) heartbeat() {
	ticker := time.NewTicker(3 * time.Second)
	path := n.nodePath()

	for range ticker.C {
		now := nowMillis()
		if now < n.lastMillis {
			log.Printf("clock rollback detected during heartbeat: %d < %d", now, n.lastMillis)
			continue
		}

		state := workerState{WorkerID: n.workerID, LastMillis: now}
		data, err := json.Marshal(state)
		if err != nil {
			continue
		}
		n.conn.Set(path, data, -1)
		n.saveCache(state)
	}
}

func (n *Node) ensurePath(path string) {
	exists, _, _ := n.conn.Exists(path)
	if !exists {
		n.conn.Create(path, nil, 0, zk.WorldACL(zk.PermAll))
	}
}

func (n *Node) cacheFile() string {
	return fmt.Sprintf(".snowflake_cache_%d", n.port)
}

func (n *Node) saveCache(state workerState) {
	data, err := json.Marshal(state)
	if err != nil {
		return
	}
	os.WriteFile(n.cacheFile(), data, 0o644)
}

func (n *Node) loadCache() (workerState, error) {
	data, err := os.ReadFile(n.cacheFile())
	if err != nil {
		return workerState{}, err
	}
	var state workerState
	if err := json.Unmarshal(data, &state); err != nil {
		return workerState{}, err
	}
	return state, nil
}

func main() {
	// Requires a ZooKeeper at localhost:2181, e.g.:
	// docker run --name zk -p 2181:2181 -d zookeeper

	node, err := NewNode([]string{"127.0.0.1:2181"}, "order-service", 8080)
	if err != nil {
		log.Fatalf("init snowflake node: %v", err)
	}

	log.Println("generating IDs...")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id, err := node.NextID()
				if err != nil {
					log.Println(err)
					continue
				}
				fmt.Println(id)
			}
		}()
	}
	wg.Wait()
	log.Println("done")
}
