package merkle

import "strconv"

// leafTag is the reserved domain tag for leaf commitments. Tree levels use
// their own value as tag, so they must stay below it.
const leafTag = 63

// MaxTreeHeight bounds the tree heights the engine can address: a tree of
// height h compresses at levels 0..h-2, and every level must fit the 6-bit
// tag space below leafTag.
const MaxTreeHeight = leafTag + 1

// Personalization is the domain tag mixed into every compression so that a
// hash computed in one context can never be mistaken for another. It is a
// closed set: the leaf commitment context, or one tree level.
type Personalization struct {
	leaf  bool
	level int
}

// LeafCommitment returns the personalization of leaf hashing.
func LeafCommitment() Personalization {
	return Personalization{leaf: true}
}

// TreeLevel returns the personalization of internal node compression at the
// given level; level 0 sits at the leaves' parents and grows toward the root.
// Panics if level is outside [0, 63).
func TreeLevel(level int) Personalization {
	if level < 0 || level >= leafTag {
		panic("merkle: tree level " + strconv.Itoa(level) + " out of range")
	}
	return Personalization{level: level}
}

// Tag returns the 6-bit domain tag: the level itself for TreeLevel, the
// reserved top value for LeafCommitment.
func (p Personalization) Tag() uint64 {
	if p.leaf {
		return leafTag
	}
	return uint64(p.level)
}

func (p Personalization) String() string {
	if p.leaf {
		return "LeafCommitment"
	}
	return "TreeLevel(" + strconv.Itoa(p.level) + ")"
}
