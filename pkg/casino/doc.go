// Package casino is the core of the merchant SDK for the casino backend.
//
// Every backend operation is an HTTP POST of a signed JSON request to
// {baseURL}/{controller}/{resource}. The backend answers with an envelope:
//
//	{"statusCode": 200, "statusMessage": "...", "data": {...}}
//
// # Authentication
//
// Requests carry the merchant id and a hash. The hash is the hex encoded
// SHA-256 of the merchant id, the operation fields in a fixed per-resource
// order, and the private key, joined with "|":
//
//	sha256("42|asc|name|1|20|private-key")
//
// # Basic Usage
//
//	creds, err := casino.NewMerchantCredentials("https://api.example.com", 42, "private-key")
//	client := casino.NewClient(creds, casino.WithTimeout(10*time.Second))
//
//	tournaments := tablegames.NewTournamentService(client, tablegames.Backgammon)
//	res, err := tournaments.GetTournaments(ctx, tablegames.TournamentsFilter{
//	    Paging: casino.Paging{PageIndex: 1, PageSize: 20},
//	})
//
// # Error Handling
//
// Invalid input and backend failure codes are part of the result:
//
//	if err != nil {
//	    // *casino.ConnectivityError or *casino.MappingError
//	}
//	if !res.OK() {
//	    switch res.StatusCode {
//	    case casino.StatusInvalidRequest:
//	        // res.Message names the offending field for local validation
//	    }
//	}
package casino
