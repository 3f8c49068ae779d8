package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shivam222343/doantion-app/apperr"
	"github.com/shivam222343/doantion-app/donation"
	"github.com/shivam222343/doantion-app/external/geoinfo"
	"github.com/shivam222343/doantion-app/schema"
)

type donationBody struct {
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Quantity      string           `json:"quantity"`
	ImageURL      string           `json:"image_url"`
	Location      *schema.Location `json:"location"`
	PickupAddress string           `json:"pickup_address"`
	Home          string           `json:"home"`
	Street        string           `json:"street"`
}

// locationQuery reads latitude and longitude from the query string
func locationQuery(c *gin.Context, latKey, lngKey string) (schema.Location, error) {
	lat, err := strconv.ParseFloat(c.Query(latKey), 64)
	if err != nil {
		return schema.Location{}, fmt.Errorf("invalid %s: %w", latKey, err)
	}

	lng, err := strconv.ParseFloat(c.Query(lngKey), 64)
	if err != nil {
		return schema.Location{}, fmt.Errorf("invalid %s: %w", lngKey, err)
	}

	return schema.Location{Latitude: lat, Longitude: lng}, nil
}

func (s *Server) createDonation(c *gin.Context) {
	var body donationBody
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	d, err := s.donations.CreateDonation(c, requester(c), donation.NewDonation{
		Title:         body.Title,
		Description:   body.Description,
		Category:      body.Category,
		Quantity:      body.Quantity,
		ImageURL:      body.ImageURL,
		Location:      body.Location,
		PickupAddress: body.PickupAddress,
		Home:          body.Home,
		Street:        body.Street,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"donation": d,
	})
}

func (s *Server) nearbyDonations(c *gin.Context) {
	loc, err := locationQuery(c, "latitude", "longitude")
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var radius int
	if r := c.Query("radius"); r != "" {
		radius, err = strconv.Atoi(r)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
	}

	donations, err := s.donations.Nearby(c, requester(c), loc, radius)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, donations)
}

func (s *Server) myDonations(c *gin.Context) {
	donations, err := s.donations.Mine(c, requester(c), c.Query("category"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, donations)
}

func (s *Server) getDonation(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	d, err := s.donations.Get(c, id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, d)
}

func (s *Server) updateDonation(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var body schema.DonationDetails
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	d, err := s.donations.Update(c, requester(c), id, body)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, d)
}

func (s *Server) deleteDonation(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := s.donations.Delete(c, requester(c), id); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) markReceived(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	d, err := s.donations.MarkReceived(c, id, requester(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"donation": d,
	})
}

func (s *Server) cancelDonation(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	d, err := s.donations.Cancel(c, requester(c), id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"donation": d,
	})
}

func (s *Server) reverseGeocode(c *gin.Context) {
	loc, err := locationQuery(c, "lat", "lon")
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	address, err := s.geoInfo.ReverseGeocode(c, loc)
	if err != nil {
		if errors.Is(err, geoinfo.ErrNoAddress) {
			abortWithEncoding(c, http.StatusNotFound, ErrorResponse{
				Code:    kindCode[apperr.NotFound],
				Message: err.Error(),
			}, err)
			return
		}
		abortWithEncoding(c, http.StatusBadGateway, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, address)
}
