package database

import "time"

var seedBooks = []bookV1{
	{ID: 1, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Year: 1925},
	{ID: 2, Title: "To Kill a Mockingbird", Author: "Harper Lee", Year: 1960},
	{ID: 3, Title: "1984", Author: "George Orwell", Year: 1949},
	{ID: 4, Title: "Pride and Prejudice", Author: "Jane Austen", Year: 1813},
	{ID: 5, Title: "The Catcher in the Rye", Author: "J.D. Salinger", Year: 1951},
	{ID: 6, Title: "One Hundred Years of Solitude", Author: "Gabriel García Márquez", Year: 1967},
	{ID: 7, Title: "Brave New World", Author: "Aldous Huxley", Year: 1932},
	{ID: 8, Title: "The Lord of the Rings", Author: "J.R.R. Tolkien", Year: 1954},
	{ID: 9, Title: "Harry Potter and the Philosopher's Stone", Author: "J.K. Rowling", Year: 1997},
	{ID: 10, Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: 1937},
	{ID: 11, Title: "Moby-Dick", Author: "Herman Melville", Year: 1851},
	{ID: 12, Title: "War and Peace", Author: "Leo Tolstoy", Year: 1869},
	{ID: 13, Title: "The Odyssey", Author: "Homer", Year: -800},
	{ID: 14, Title: "Crime and Punishment", Author: "Fyodor Dostoevsky", Year: 1866},
	{ID: 15, Title: "The Shining", Author: "Stephen King", Year: 1977},
}

func reviewDate(month time.Month, day int) time.Time {
	return time.Date(2023, month, day, 0, 0, 0, 0, time.UTC)
}

var seedReviews = []bookReviewV1{
	{ID: 1, BookID: 1, ReviewerName: "Jane Smith", Rating: 4, ReviewDate: reviewDate(time.February, 20),
		ReviewText: "Beautifully written with complex characters, though the pacing felt slow at times."},
	{ID: 2, BookID: 2, ReviewerName: "Robert Johnson", Rating: 5, ReviewDate: reviewDate(time.March, 10),
		ReviewText: "A powerful exploration of racial injustice that remains relevant today."},
	{ID: 3, BookID: 3, ReviewerName: "Sarah Williams", Rating: 5, ReviewDate: reviewDate(time.April, 5),
		ReviewText: "Orwell's dystopian vision is disturbingly prescient. A must-read for everyone."},
	{ID: 4, BookID: 4, ReviewerName: "Emily Chen", Rating: 5, ReviewDate: reviewDate(time.March, 22),
		ReviewText: "Austen's wit and social commentary shine in this timeless romance."},
	{ID: 5, BookID: 5, ReviewerName: "Michael Brown", Rating: 4, ReviewDate: reviewDate(time.May, 12),
		ReviewText: "Holden Caulfield's voice is authentic and raw, speaking to teenage alienation across generations."},
	{ID: 6, BookID: 6, ReviewerName: "Sofia Rodriguez", Rating: 5, ReviewDate: reviewDate(time.February, 8),
		ReviewText: "Magical realism at its finest. A multi-generational epic that blends fantasy with history."},
	{ID: 7, BookID: 7, ReviewerName: "Thomas Wilson", Rating: 4, ReviewDate: reviewDate(time.June, 19),
		ReviewText: "Huxley's vision of a pleasure-obsessed society feels increasingly relevant."},
	{ID: 8, BookID: 8, ReviewerName: "Alex Morgan", Rating: 5, ReviewDate: reviewDate(time.April, 30),
		ReviewText: "The definitive fantasy epic that created a genre. Unmatched in scope and imagination."},
	{ID: 9, BookID: 9, ReviewerName: "Lily Zhang", Rating: 5, ReviewDate: reviewDate(time.July, 15),
		ReviewText: "The beginning of a magical journey that captivated a generation. Perfect for readers of all ages."},
	{ID: 10, BookID: 10, ReviewerName: "David Lee", Rating: 4, ReviewDate: reviewDate(time.March, 27),
		ReviewText: "A charming adventure story that serves as the perfect introduction to Middle-earth."},
	{ID: 11, BookID: 11, ReviewerName: "Amanda Carter", Rating: 3, ReviewDate: reviewDate(time.May, 8),
		ReviewText: "A monumental work of literature, though the extensive whaling details can be challenging for modern readers."},
	{ID: 12, BookID: 12, ReviewerName: "Gregory Patel", Rating: 4, ReviewDate: reviewDate(time.June, 12),
		ReviewText: "Tolstoy's masterpiece weaves personal stories with historical events to create a panoramic view of Russian society."},
	{ID: 13, BookID: 13, ReviewerName: "Olivia Martinez", Rating: 5, ReviewDate: reviewDate(time.July, 3),
		ReviewText: "The original adventure story that has influenced countless works. Homer's epic remains powerful and engaging."},
	{ID: 14, BookID: 14, ReviewerName: "Nathan Kim", Rating: 4, ReviewDate: reviewDate(time.April, 18),
		ReviewText: "A psychological thriller that delves deep into guilt, redemption, and human nature."},
	{ID: 15, BookID: 15, ReviewerName: "Rachel Thompson", Rating: 5, ReviewDate: reviewDate(time.May, 31),
		ReviewText: "King's haunted hotel story is terrifying on multiple levels. A masterclass in psychological horror."},
}
