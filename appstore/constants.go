package appstore

// Collection identifies one of the curated feed collections.
type Collection string

const (
	CollectionNewApps            Collection = "newapplications"
	CollectionNewFreeApps        Collection = "newfreeapplications"
	CollectionNewPaidApps        Collection = "newpaidapplications"
	CollectionTopFreeApps        Collection = "topfreeapplications"
	CollectionTopFreeIPadApps    Collection = "topfreeipadapplications"
	CollectionTopGrossingApps    Collection = "topgrossingapplications"
	CollectionTopGrossingIPad    Collection = "topgrossingipadapplications"
	CollectionTopPaidApps        Collection = "toppaidapplications"
	CollectionTopPaidIPadApps    Collection = "toppaidipadapplications"
)

var collections = map[Collection]bool{
	CollectionNewApps:         true,
	CollectionNewFreeApps:     true,
	CollectionNewPaidApps:     true,
	CollectionTopFreeApps:     true,
	CollectionTopFreeIPadApps: true,
	CollectionTopGrossingApps: true,
	CollectionTopGrossingIPad: true,
	CollectionTopPaidApps:     true,
	CollectionTopPaidIPadApps: true,
}

// Sort orders for the reviews feed.
type Sort string

const (
	SortRecent  Sort = "mostrecent"
	SortHelpful Sort = "mosthelpful"
)

var sorts = map[Sort]bool{
	SortRecent:  true,
	SortHelpful: true,
}

// Device narrows search results to a marketplace device family.
type Device string

const (
	DeviceAll  Device = "software"
	DeviceIPad Device = "iPadSoftware"
	DeviceMac  Device = "macSoftware"
)

var devices = map[Device]bool{
	DeviceAll:  true,
	DeviceIPad: true,
	DeviceMac:  true,
}

// Category genre ids. 0 means "all categories".
const (
	CategoryBooks            = 6018
	CategoryBusiness         = 6000
	CategoryCatalogs         = 6022
	CategoryEducation        = 6017
	CategoryEntertainment    = 6016
	CategoryFinance          = 6015
	CategoryFoodAndDrink     = 6023
	CategoryGames            = 6014
	CategoryHealthAndFitness = 6013
	CategoryLifestyle        = 6012
	CategoryMagazines        = 6021
	CategoryMedical          = 6020
	CategoryMusic            = 6011
	CategoryNavigation       = 6010
	CategoryNews             = 6009
	CategoryPhotoAndVideo    = 6008
	CategoryProductivity     = 6007
	CategoryReference        = 6006
	CategoryShopping         = 6024
	CategorySocialNetworking = 6005
	CategorySports           = 6004
	CategoryTravel           = 6003
	CategoryUtilities        = 6002
	CategoryWeather          = 6001

	CategoryGamesAction      = 7001
	CategoryGamesAdventure   = 7002
	CategoryGamesArcade      = 7003
	CategoryGamesBoard       = 7004
	CategoryGamesCard        = 7005
	CategoryGamesCasino      = 7006
	CategoryGamesFamily      = 7009
	CategoryGamesMusic       = 7011
	CategoryGamesPuzzle      = 7012
	CategoryGamesRacing      = 7013
	CategoryGamesRolePlaying = 7014
	CategoryGamesSimulation  = 7015
	CategoryGamesSports      = 7016
	CategoryGamesStrategy    = 7017
	CategoryGamesTrivia      = 7018
	CategoryGamesWord        = 7019
)

var categories = map[int]bool{
	CategoryBooks: true, CategoryBusiness: true, CategoryCatalogs: true,
	CategoryEducation: true, CategoryEntertainment: true, CategoryFinance: true,
	CategoryFoodAndDrink: true, CategoryGames: true, CategoryHealthAndFitness: true,
	CategoryLifestyle: true, CategoryMagazines: true, CategoryMedical: true,
	CategoryMusic: true, CategoryNavigation: true, CategoryNews: true,
	CategoryPhotoAndVideo: true, CategoryProductivity: true, CategoryReference: true,
	CategoryShopping: true, CategorySocialNetworking: true, CategorySports: true,
	CategoryTravel: true, CategoryUtilities: true, CategoryWeather: true,
	CategoryGamesAction: true, CategoryGamesAdventure: true, CategoryGamesArcade: true,
	CategoryGamesBoard: true, CategoryGamesCard: true, CategoryGamesCasino: true,
	CategoryGamesFamily: true, CategoryGamesMusic: true, CategoryGamesPuzzle: true,
	CategoryGamesRacing: true, CategoryGamesRolePlaying: true, CategoryGamesSimulation: true,
	CategoryGamesSports: true, CategoryGamesStrategy: true, CategoryGamesTrivia: true,
	CategoryGamesWord: true,
}

// markets maps a lowercase country code to its storefront id, sent in
// the X-Apple-Store-Front header. Loaded once, never mutated.
var markets = map[string]string{
	"ar": "143505",
	"at": "143445",
	"au": "143460",
	"be": "143446",
	"br": "143503",
	"ca": "143455",
	"ch": "143459",
	"cl": "143483",
	"cn": "143465",
	"co": "143501",
	"cz": "143489",
	"de": "143443",
	"dk": "143458",
	"es": "143454",
	"fi": "143447",
	"fr": "143442",
	"gb": "143444",
	"gr": "143448",
	"hk": "143463",
	"hu": "143482",
	"id": "143476",
	"ie": "143449",
	"il": "143491",
	"in": "143467",
	"it": "143450",
	"jp": "143462",
	"kr": "143466",
	"mx": "143468",
	"my": "143473",
	"nl": "143452",
	"no": "143457",
	"nz": "143461",
	"ph": "143474",
	"pl": "143478",
	"pt": "143453",
	"ru": "143469",
	"sa": "143479",
	"se": "143456",
	"sg": "143464",
	"th": "143475",
	"tr": "143480",
	"tw": "143470",
	"us": "143441",
	"vn": "143471",
	"za": "143472",
}

// Pagination past this many results is not retrievable upstream; the
// issued limit parameter is capped here and deeper offsets come back as
// empty result sets.
const searchResultCap = 200

// listResultCap bounds a single feed request.
const listResultCap = 200

const (
	defaultCountry   = "us"
	defaultSearchNum = 50
	defaultListNum   = 50
	maxReviewsPage   = 10
)
