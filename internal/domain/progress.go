package domain

// Progress describes where a chunked acquisition currently stands. The
// chunked client reports one before and after every chunk and on terminal
// states; a failed chunk carries Error and the run keeps going.
type Progress struct {
	CurrentChunk      int    `json:"currentChunk"`
	TotalChunks       int    `json:"totalChunks"`
	ProcessedProfiles int    `json:"processedProfiles"`
	TotalProfiles     int    `json:"totalProfiles"`
	Status            string `json:"status"`
	Error             string `json:"error,omitempty"`
}

// ChunkInfo accompanies each completed chunk's results.
type ChunkInfo struct {
	ChunkIndex        int `json:"chunkIndex"`
	TotalChunks       int `json:"totalChunks"`
	ProcessedProfiles int `json:"processedProfiles"`
	TotalProfiles     int `json:"totalProfiles"`
}
