package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Airport is a static lookup entry served to the booking form.
type Airport struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
	City string `json:"city"`
}

var airportData = []Airport{
	{Name: "Indira Gandhi International Airport", IATA: "DEL", City: "Delhi"},
	{Name: "Hindon Airport", IATA: "QAH", City: "Ghaziabad"},
	{Name: "Noida International Airport (Jewar)", IATA: "DXN", City: "Noida"},
	{Name: "Chhatrapati Shivaji Maharaj International Airport", IATA: "BOM", City: "Mumbai"},
	{Name: "Kempegowda International Airport", IATA: "BLR", City: "Bengaluru"},
	{Name: "Rajiv Gandhi International Airport", IATA: "HYD", City: "Hyderabad"},
	{Name: "Sardar Vallabhbhai Patel International Airport", IATA: "AMD", City: "Ahmedabad"},
	{Name: "Cochin International Airport", IATA: "COK", City: "Kochi"},
	{Name: "Pune Airport", IATA: "PNQ", City: "Pune"},
	{Name: "Chennai International Airport", IATA: "MAA", City: "Chennai"},
	{Name: "Netaji Subhas Chandra Bose International Airport", IATA: "CCU", City: "Kolkata"},
	{Name: "Dabolim Airport", IATA: "GOI", City: "Goa"},
	{Name: "Lokpriya Gopinath Bordoloi International Airport", IATA: "GAU", City: "Guwahati"},
	{Name: "Jay Prakash Narayan Airport", IATA: "PAT", City: "Patna"},
	{Name: "Sri Guru Ram Dass Jee International Airport", IATA: "ATQ", City: "Amritsar"},
	{Name: "Dr. Babasaheb Ambedkar International Airport", IATA: "NAG", City: "Nagpur"},
	{Name: "Shaheed Bhagat Singh International Airport", IATA: "IXC", City: "Chandigarh"},
	{Name: "Veer Savarkar International Airport", IATA: "IXZ", City: "Port Blair"},
	{Name: "Biju Patnaik International Airport", IATA: "BBI", City: "Bhubaneswar"},
	{Name: "Lal Bahadur Shastri International Airport", IATA: "VNS", City: "Varanasi"},
	{Name: "Birsa Munda Airport", IATA: "IXR", City: "Ranchi"},
	{Name: "Devi Ahilya Bai Holkar Airport", IATA: "IDR", City: "Indore"},
	{Name: "Maharaja Bir Bikram Airport", IATA: "IXA", City: "Agartala"},
	{Name: "Gaya International Airport", IATA: "GAY", City: "Gaya"},
	{Name: "Surat International Airport", IATA: "STV", City: "Surat"},
	{Name: "Tirupati Airport", IATA: "TIR", City: "Tirupati"},
	{Name: "Bagdogra Airport", IATA: "IXB", City: "Siliguri"},
}

var cityData = []string{
	"Agartala", "Agra", "Ahmedabad", "Ajmer", "Aligarh", "Amritsar", "Aurangabad",
	"Bengaluru", "Bhopal", "Bhubaneswar", "Chandigarh", "Chennai", "Coimbatore",
	"Dehradun", "Delhi", "Faridabad", "Gaya", "Ghaziabad", "Goa", "Gurugram",
	"Guwahati", "Gwalior", "Haridwar", "Hyderabad", "Indore", "Jabalpur",
	"Jaipur", "Jodhpur", "Kanpur", "Kochi", "Kolkata", "Lucknow", "Ludhiana",
	"Mathura", "Meerut", "Mumbai", "Nagpur", "Nashik", "Noida", "Patna",
	"Port Blair", "Prayagraj", "Pune", "Raipur", "Rajkot", "Ranchi", "Rishikesh",
	"Shimla", "Siliguri", "Surat", "Tirupati", "Udaipur", "Ujjain", "Vadodara",
	"Varanasi", "Vrindavan",
}

type MetaController struct{}

func NewMetaController() *MetaController {
	return &MetaController{}
}

// ListAirports handles GET /api/airports.
func (mc *MetaController) ListAirports(c *gin.Context) {
	c.JSON(http.StatusOK, airportData)
}

// ListCities handles GET /api/cities.
func (mc *MetaController) ListCities(c *gin.Context) {
	c.JSON(http.StatusOK, cityData)
}
