package dataset

import (
	"log/slog"

	"github.com/spf13/afero"
)

// Open loads the dataset named by the two paths. An empty path selects the
// corresponding embedded sample file, so either file can be overridden on
// its own. Both collections are checked for unique keys and required
// fields. Holding symbols are not checked against the stocks collection.
func Open(fs afero.Fs, usersPath, stocksPath string) (Data, error) {
	usersLoader, stocksLoader := NewLoader(fs), NewLoader(fs)
	if usersPath == "" {
		usersLoader, usersPath = NewSampleLoader(), SampleUsersPath
	}
	if stocksPath == "" {
		stocksLoader, stocksPath = NewSampleLoader(), SampleStocksPath
	}

	users, err := usersLoader.LoadUsers(usersPath)
	if err != nil {
		return Data{}, err
	}
	stocks, err := stocksLoader.LoadStocks(stocksPath)
	if err != nil {
		return Data{}, err
	}
	slog.Debug("dataset loaded", "users", len(users), "stocks", len(stocks))
	return Data{Users: users, Stocks: stocks}, nil
}
