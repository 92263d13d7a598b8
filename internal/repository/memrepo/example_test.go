package memrepo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrled/addrbook/internal/model"
)

func ExampleMemoryRepository() {
	dir, _ := os.MkdirTemp("", "example")
	defer os.RemoveAll(dir)
	tmpPath := filepath.Join(dir, "addressbook.json")

	ctx := context.Background()
	repo, _ := NewMemoryRepositoryWithPersistence(tmpPath)

	book := model.NewDirectory()
	record, _ := model.NewRecord("Alice")
	record.AddPhone("0123456789")
	record.AddPhone("9876543210")
	book.AddRecord(record)

	repo.Save(ctx, book)

	// Read the JSON file to show format
	content, _ := os.ReadFile(tmpPath)
	fmt.Println(string(content))

	// Output:
	// {
	//   "version": 1,
	//   "contacts": [
	//     {
	//       "name": "Alice",
	//       "phones": [
	//         "0123456789",
	//         "9876543210"
	//       ]
	//     }
	//   ]
	// }
}
