package retained

import "sync"

// ============================================================================
// Slice Pooling
// ============================================================================
//
// Layout and global dispatch snapshot sibling groups and id lists on every
// pass. These pools keep those scratch slices off the garbage collector.
//
// Usage:
//   items := acquireFlexItems(len(children))
//   ... fill and use items ...
//   releaseFlexItems(items)

// idSlicePool pools []NodeID snapshots.
var idSlicePool = sync.Pool{
	New: func() interface{} {
		return make([]NodeID, 0, 32)
	},
}

// acquireIDSlice gets an id slice with len == n.
// Caller must call releaseIDSlice when done.
func acquireIDSlice(n int) []NodeID {
	slice := idSlicePool.Get().([]NodeID)
	if cap(slice) < n {
		idSlicePool.Put(slice[:0])
		return make([]NodeID, n, n*2)
	}
	return slice[:n]
}

// releaseIDSlice returns an id slice to the pool.
func releaseIDSlice(slice []NodeID) {
	if slice == nil {
		return
	}
	// Only pool slices up to a reasonable size to avoid memory bloat
	if cap(slice) <= 1024 {
		idSlicePool.Put(slice[:0])
	}
}

// flexItemPool pools the per-group scratch space used by layoutGroup.
var flexItemPool = sync.Pool{
	New: func() interface{} {
		return make([]flexItem, 0, 16)
	},
}

// acquireFlexItems gets a zeroed flexItem slice with len == n.
func acquireFlexItems(n int) []flexItem {
	slice := flexItemPool.Get().([]flexItem)
	if cap(slice) < n {
		flexItemPool.Put(slice[:0])
		return make([]flexItem, n, n*2)
	}
	slice = slice[:n]
	clear(slice)
	return slice
}

// releaseFlexItems returns a flexItem slice to the pool after dropping node
// references.
func releaseFlexItems(slice []flexItem) {
	if slice == nil {
		return
	}
	clear(slice)
	if cap(slice) <= 256 {
		flexItemPool.Put(slice[:0])
	}
}
