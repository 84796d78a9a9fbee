package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

type customerForm struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	CCNumber      string `json:"cc_number"`
	CCExpiryMonth string `json:"cc_expiry_month,omitempty"`
	CCExpiryYear  string `json:"cc_expiry_year,omitempty"`
}

type cartItem struct {
	BookID     int64 `json:"book_id"`
	Quantity   int   `json:"quantity"`
	Price      int   `json:"price"`
	CategoryID int64 `json:"category_id"`
}

type shoppingCart struct {
	Surcharge int        `json:"surcharge"`
	Items     []cartItem `json:"items"`
}

type placeOrderRequest struct {
	Customer customerForm `json:"customer"`
	Cart     shoppingCart `json:"cart"`
}

type placeOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

// Цены и категории из сид-данных; при расхождении сервис вернёт 400
var seedBooks = []cartItem{
	{BookID: 1, Price: 1500, CategoryID: 1},
	{BookID: 2, Price: 2000, CategoryID: 1},
	{BookID: 3, Price: 900, CategoryID: 2},
	{BookID: 4, Price: 3200, CategoryID: 3},
	{BookID: 5, Price: 1100, CategoryID: 3},
}

func randomOrder() placeOrderRequest {
	items := make([]cartItem, 0, 3)
	for _, book := range seedBooks {
		if rand.Intn(2) == 0 {
			continue
		}
		item := book
		item.Quantity = rand.Intn(5) + 1
		items = append(items, item)
	}
	if len(items) == 0 {
		item := seedBooks[rand.Intn(len(seedBooks))]
		item.Quantity = 1
		items = append(items, item)
	}

	return placeOrderRequest{
		Customer: customerForm{
			Name:          fmt.Sprintf("Customer %04d", rand.Intn(10000)),
			Address:       fmt.Sprintf("%d Main Street", rand.Intn(900)+100),
			Phone:         fmt.Sprintf("%03d-%03d-%04d", rand.Intn(900)+100, rand.Intn(900)+100, rand.Intn(10000)),
			Email:         fmt.Sprintf("customer%d@example.com", rand.Intn(10000)),
			CCNumber:      fmt.Sprintf("4%015d", rand.Int63n(1e15)),
			CCExpiryMonth: fmt.Sprintf("%d", rand.Intn(12)+1),
			CCExpiryYear:  fmt.Sprintf("%d", time.Now().Year()+1+rand.Intn(4)),
		},
		Cart: shoppingCart{
			Surcharge: rand.Intn(1000),
			Items:     items,
		},
	}
}

// Иногда портим запрос, чтобы проверить ответы 400
func corrupt(req *placeOrderRequest) {
	switch rand.Intn(4) {
	case 0:
		req.Customer.Phone = "12345"
	case 1:
		req.Customer.Email = "not-an-email"
	case 2:
		req.Cart.Items[0].Price += 1
	case 3:
		req.Cart.Items[0].Quantity = 100
	}
}

func placeOrder() {
	req := randomOrder()
	if rand.Intn(5) == 0 {
		corrupt(&req)
	}

	data, _ := json.Marshal(req)
	resp, err := http.Post(baseURL+"/orders", "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	defer resp.Body.Close()

	fmt.Println("POST /orders ->", resp.Status)

	if resp.StatusCode != http.StatusCreated {
		return
	}

	var placed placeOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&placed); err != nil {
		fmt.Println("Ошибка декодирования:", err)
		return
	}

	url := fmt.Sprintf("%s/orders/%d", baseURL, placed.OrderID)
	detailsResp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	detailsResp.Body.Close()
	fmt.Println("GET", url, "->", detailsResp.Status)
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(5) + 1 {
			wg.Go(placeOrder)
		}
		wg.Wait()
		time.Sleep(100 * time.Millisecond)
	}
}
