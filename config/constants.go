package config

// Shape of the input images and of the embedding thumbnails, in pixels.
var (
	ImageShape     = [2]int{32, 32}
	ThumbnailShape = [2]int{32, 32}
)

// DefaultEmbeddingSize is the number of samples passed to the embedding.
const DefaultEmbeddingSize = 1024

// DefaultKCandidates is the number of candidate classes to predict.
const DefaultKCandidates = 5

// LabelMetaFile is the file name of the label metadata written next to the sprites.
const LabelMetaFile = "label_meta.proto"

// EmbeddingTensor names a tensor looked up by the embedding exporter.
type EmbeddingTensor string

// Tensor names.
const (
	TensorBatchLabels    EmbeddingTensor = "batch_labels"
	TensorBatchFeatures  EmbeddingTensor = "batch_features"
	TensorEmbeddingInput EmbeddingTensor = "embedding_input"
)

// EmbeddingTensors returns every tensor name in declaration order.
func EmbeddingTensors() []EmbeddingTensor {
	return []EmbeddingTensor{
		TensorBatchLabels,
		TensorBatchFeatures,
		TensorEmbeddingInput,
	}
}

// Constants is a printable view of the shared pipeline constants.
type Constants struct {
	ImageShape     [2]int            `json:"image_shape"`
	ThumbnailShape [2]int            `json:"thumbnail_shape"`
	EmbeddingSize  int               `json:"embedding_size"`
	LabelMetaFile  string            `json:"label_meta_file"`
	Tensors        []EmbeddingTensor `json:"embedding_tensors"`
}

// SharedConstants collects the constants into a Constants value.
func SharedConstants() Constants {
	return Constants{
		ImageShape:     ImageShape,
		ThumbnailShape: ThumbnailShape,
		EmbeddingSize:  DefaultEmbeddingSize,
		LabelMetaFile:  LabelMetaFile,
		Tensors:        EmbeddingTensors(),
	}
}
