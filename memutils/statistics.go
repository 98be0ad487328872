package memutils

// Statistics aggregates the allocation traffic seen by a single allocator or a
// group of allocators.
type Statistics struct {
	AllocationCount       int
	FreeCount             int
	AllocationBytes       int
	FreedBytes            int
	FailedAllocationCount int
}

func (s *Statistics) Clear() {
	s.AllocationCount = 0
	s.FreeCount = 0
	s.AllocationBytes = 0
	s.FreedBytes = 0
	s.FailedAllocationCount = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.AllocationCount += other.AllocationCount
	s.FreeCount += other.FreeCount
	s.AllocationBytes += other.AllocationBytes
	s.FreedBytes += other.FreedBytes
	s.FailedAllocationCount += other.FailedAllocationCount
}

// OutstandingAllocations is the number of allocations that have not yet been freed.
func (s *Statistics) OutstandingAllocations() int {
	return s.AllocationCount - s.FreeCount
}

// InUseBytes is the number of allocated bytes that have not yet been freed.
func (s *Statistics) InUseBytes() int {
	return s.AllocationBytes - s.FreedBytes
}
