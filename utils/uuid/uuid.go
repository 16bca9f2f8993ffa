package uuid

import (
	"strings"

	"github.com/google/uuid"
)

// GenUUID16 生成16位短uuid，用于requestId这类内部标识
func GenUUID16() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return id[:16]
}

// GenUUID 标准36位uuid
func GenUUID() string {
	return uuid.NewString()
}
