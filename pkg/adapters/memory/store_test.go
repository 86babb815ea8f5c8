package memory_test

import (
	"testing"

	"github.com/angjelo/AIAgentStudio/pkg/adapters/memory"
	"github.com/angjelo/AIAgentStudio/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunAgentStoreContract(t, memory.NewStore())
}
