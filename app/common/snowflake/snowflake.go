package snowflake

import (
	"hash/fnv"
	"os"
	"sync"

	bwsnowflake "github.com/bwmarrin/snowflake"
)

var (
	mu   sync.Mutex
	node *bwsnowflake.Node
)

// SetNodeID pins the node id (0-1023). Without it the id is derived from the hostname.
func SetNodeID(id int64) error {
	n, err := bwsnowflake.NewNode(id)
	if err != nil {
		return err
	}

	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

func hostNode() *bwsnowflake.Node {
	host, _ := os.Hostname()
	h := fnv.New32a()
	_, _ = h.Write([]byte(host))

	n, err := bwsnowflake.NewNode(int64(h.Sum32()) & 0x3FF)
	if err != nil {
		n, _ = bwsnowflake.NewNode(1)
	}
	return n
}

// Next returns a new snowflake id.
func Next() int64 {
	mu.Lock()
	if node == nil {
		node = hostNode()
	}
	n := node
	mu.Unlock()

	return n.Generate().Int64()
}
