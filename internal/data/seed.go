package data

// seedCatalog returns the fixed catalog the store is populated with at
// startup. ISBNs are simple numeric strings; each book starts with an
// empty review map.
func seedCatalog() []*Book {
	titles := []struct {
		isbn, title, author string
	}{
		{"1", "Things Fall Apart", "Chinua Achebe"},
		{"2", "Fairy tales", "Hans Christian Andersen"},
		{"3", "The Divine Comedy", "Dante Alighieri"},
		{"4", "The Epic Of Gilgamesh", "Unknown"},
		{"5", "The Book Of Job", "Unknown"},
		{"6", "One Thousand and One Nights", "Unknown"},
		{"7", "Pride and Prejudice", "Jane Austen"},
		{"8", "Wuthering Heights", "Emily Brontë"},
		{"9", "The Stranger", "Albert Camus"},
		{"10", "Ficciones", "Jorge Luis Borges"},
	}

	books := make([]*Book, 0, len(titles))
	for _, t := range titles {
		books = append(books, &Book{
			ISBN:    t.isbn,
			Title:   t.title,
			Author:  t.author,
			Reviews: make(map[string]string),
		})
	}
	return books
}
