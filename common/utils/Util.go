package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

func RangeInt(min int, max int, n int) []int {
	arr := make([]int, n)
	var r int
	for r = 0; r <= n-1; r++ {
		arr[r] = rand.Intn(max) + min
	}
	return arr
}

func GetRandomIp() string {
	IpArr := RangeInt(0, 255, 4)
	var ips []string
	for _, ip := range IpArr {
		ips = append(ips, strconv.Itoa(ip))
	}
	return strings.Join(ips, ".")
}
