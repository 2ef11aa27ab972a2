package views

const shopTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<link href="https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css" rel="stylesheet">
<link href="https://cdn.jsdelivr.net/npm/@fortawesome/fontawesome-free@6.4.0/css/all.min.css" rel="stylesheet">
<link href="/static/css/style.css" rel="stylesheet">
<style>
.section { display: none; }
.section.active { display: block; }
.bottom-nav-item.inactive { opacity: 0.7; }
.bottom-nav-item.active { color: #FFD700; }
</style>
</head>
<body class="bg-gray-100">
<div id="app-container" class="pb-24">
<header class="bg-[#722F37] text-white p-3 shadow-md flex items-center justify-between sticky top-0 z-40">
  <img src="/static/images/pup_logo.png" class="h-10 w-10">
  <h1 class="text-xl font-bold">PUP E-Commerce</h1>
  <div class="space-x-4" id="top-nav-icons"></div>
</header>
<main id="main-content">

<section id="register" class="p-5 {{.SectionClass "register"}}">
  <div class="text-center mb-6">
    <img src="/static/images/pup_logo.png" class="mx-auto h-20 w-20 mb-4">
    <h2 class="text-3xl font-bold text-[#722F37]">Mula sayo para sa bayan</h2>
  </div>
  <form action="/register" method="POST" class="bg-white p-6 rounded-lg shadow-md">
    <div class="mb-4"><label for="reg_name" class="block mb-2 font-bold">Name:</label>
      <input type="text" id="reg_name" name="name" required class="w-full p-2 border rounded"></div>
    <div class="mb-4"><label for="reg_email" class="block mb-2 font-bold">Email Address:</label>
      <input type="email" id="reg_email" name="email" required class="w-full p-2 border rounded"></div>
    <div class="mb-4"><label for="reg_password" class="block mb-2 font-bold">Password:</label>
      <input type="password" id="reg_password" name="password" required class="w-full p-2 border rounded"></div>
    <div class="mb-4"><label for="reg_confirm_password" class="block mb-2 font-bold">Confirm Password:</label>
      <input type="password" id="reg_confirm_password" name="confirm_password" required class="w-full p-2 border rounded"></div>
    <button type="button" onclick="showSection('login')" class="w-full bg-cyan-400 text-white p-3 rounded-lg mb-2 hover:bg-cyan-500">Back to LOGIN</button>
    <button type="submit" class="w-full bg-cyan-500 text-white p-3 rounded-lg hover:bg-cyan-600">REGISTER</button>
  </form>
</section>

<section id="login" class="p-5 {{.SectionClass "login"}}">
  <div class="text-center mb-6">
    <img src="/static/images/pup_logo.png" class="mx-auto h-20 w-20 mb-4">
    <h2 class="text-3xl font-bold text-[#722F37]">Welcome Back!</h2>
  </div>
  <form action="/login" method="POST" class="bg-white p-6 rounded-lg shadow-md">
    <div class="mb-4"><label for="login_email" class="block mb-2 font-bold">Email Address:</label>
      <input type="email" id="login_email" name="email" required class="w-full p-2 border rounded"></div>
    <div class="mb-4"><label for="login_password" class="block mb-2 font-bold">Password:</label>
      <input type="password" id="login_password" name="password" required class="w-full p-2 border rounded"></div>
    <button type="submit" class="w-full bg-[#722F37] text-white p-3 rounded-lg mb-2 hover:bg-[#5a252a]">LOGIN</button>
    <a href="#" class="text-sm text-cyan-600 block text-center mb-4">Forgot Password?</a>
    <button type="button" onclick="showSection('register')" class="w-full bg-gray-200 text-gray-700 p-3 rounded-lg">Create Account</button>
  </form>
</section>

<section id="home" class="p-4 {{.SectionClass "home"}}">
  <img src="/static/images/pup_logo.png" class="w-full h-40 object-contain rounded-lg mb-4" alt="PUP Main Gate">
  <h3 class="text-2xl font-bold text-[#722F37] mb-4">Best Sellers</h3>
  <div class="grid grid-cols-2 gap-4">
    {{range .Products}}
    <div class="bg-white rounded-lg shadow-md p-3 text-center">
      <img src="{{.ImageURL}}" alt="{{.Name}}" class="h-32 w-full object-contain mb-2">
      <p class="font-bold text-sm h-10">{{.Name}}</p>
      <p class="text-red-600 font-bold mb-2">{{peso .Price}}</p>
      <button class="w-full bg-red-500 text-white text-sm py-1 rounded-full"
        onclick="addToCart({{.ID}}, {{.Name}}, {{fixed .Price}}, {{.ImageURL}})">Add to Cart</button>
    </div>
    {{end}}
  </div>
</section>

<section id="cart" class="p-4 {{.SectionClass "cart"}}">
  <div class="flex justify-between items-center">
    <h2 class="text-2xl font-bold text-[#722F37] mb-4">Shopping Cart</h2>
  </div>
  <div class="flex justify-between items-center mb-4 bg-white p-2 rounded-lg">
    <div class="flex items-center space-x-2">
      <input type="checkbox" id="select-all-cart" onchange="toggleSelectAll(this)">
      <label for="select-all-cart"> Select All</label>
    </div>
    <button class="text-red-500" onclick="deleteSelectedItems()">Delete</button>
  </div>
  <div id="cart-items-container" class="space-y-3 mb-4"></div>
  <div id="cart-summary" class="bg-white p-4 rounded-lg shadow-t-lg fixed bottom-16 left-0 right-0">
    <div class="flex justify-between items-center mb-4">
      <span class="font-bold">Subtotal:</span>
      <span id="cart-subtotal" class="font-bold">₱0.00</span>
    </div>
    <button class="w-full bg-[#722F37] text-white p-3 rounded-lg font-bold" onclick="showSection('checkout')">CHECK OUT</button>
  </div>
</section>

<section id="checkout" class="p-4 {{.SectionClass "checkout"}}">
  <h2 class="text-2xl font-bold text-center text-[#722F37] mb-6">STUDY WITH PASSION</h2>
  <div class="bg-white p-4 rounded-lg shadow-md mb-6">
    <h3 class="font-bold border-b pb-2 mb-2">Order Summary</h3>
    <div class="mb-2"><span>Subtotal</span><span id="checkout-subtotal" class="float-right">₱0.00</span></div>
    <div class="mb-2"><span>Shipping</span><span id="checkout-shipping" class="float-right">₱36.00</span></div>
    <hr class="my-2">
    <div class="text-lg"><span class="font-bold">Total</span><span id="checkout-total" class="font-bold float-right">₱36.00</span></div>
  </div>
  <div class="bg-white p-4 rounded-lg shadow-md mb-6">
    <h3 class="font-bold mb-2">Payment Method</h3>
    <div class="flex items-center"><input type="radio" name="payment" id="cod" checked><label for="cod"> Cash on delivery</label></div>
  </div>
  <button class="w-full bg-red-600 text-white p-4 rounded-lg font-bold text-lg">CHECK OUT NOW!</button>
</section>

<section id="profile" class="p-4 {{.SectionClass "profile"}}">
  <div class="text-center mb-4"><i class="fas fa-user-circle text-8xl text-gray-400"></i></div>
  <div class="bg-white p-4 rounded-lg shadow-md mb-4">
    <h3 class="font-bold">Address 1</h3>
    <p class="text-gray-600">Juan Dela Cruz</p>
    <p class="text-gray-600">123 Sampaguita St, Sampaloc, Manila</p>
    <p class="text-gray-600">0917-123-4567</p>
  </div>
  <div class="bg-white rounded-lg shadow-md">
    <a href="#" onclick="showSection('order_history')" class="block p-3 border-b"><div>Order History <i class="fas fa-chevron-right float-right text-gray-400"></i></div></a>
    <a href="#" class="block p-3 border-b"><div>User Settings <i class="fas fa-chevron-right float-right text-gray-400"></i></div></a>
    <a href="#" class="block p-3"><div>Change Password <i class="fas fa-chevron-right float-right text-gray-400"></i></div></a>
  </div>
</section>

<section id="order_history" class="p-4 {{.SectionClass "order_history"}}">
  <h2 class="text-2xl font-bold text-[#722F37] mb-4 text-center p-3 bg-white rounded-lg shadow-md">Order History</h2>
  <div class="overflow-x-auto">
    <table class="w-full text-left bg-white rounded-lg shadow-md">
      <thead><tr class="border-b"><th class="p-3">Ref No.</th><th class="p-3">Status</th><th class="p-3">Items</th><th class="p-3">Payment</th></tr></thead>
      <tbody>
        {{range .Orders}}
        <tr class="border-b"><td class="p-3">{{.Ref}}</td><td class="p-3">{{.Status}}</td><td class="p-3">{{.Items}}</td><td class="p-3">{{.Payment}}</td></tr>
        {{end}}
      </tbody>
    </table>
  </div>
</section>

<section id="contact" class="p-4 {{.SectionClass "contact"}}">
  <h2 class="text-2xl font-bold text-center text-[#722F37] mb-6">Contact Us</h2>
  {{if .Notice}}<div class="bg-green-100 text-green-800 p-3 rounded-lg mb-4 text-center">{{.Notice}}</div>{{end}}
  <form action="/contact" method="POST" class="bg-white p-6 rounded-lg shadow-md">
    <div class="mb-4"><label for="contact_name" class="block mb-2 font-bold">Name:</label>
      <input type="text" id="contact_name" name="name" class="w-full p-2 border rounded"></div>
    <div class="mb-4"><label for="contact_email" class="block mb-2 font-bold">Email Address:</label>
      <input type="email" id="contact_email" name="email" class="w-full p-2 border rounded"></div>
    <div class="mb-6"><label for="contact_message" class="block mb-2 font-bold">Message</label>
      <textarea id="contact_message" name="message" rows="5" class="w-full p-2 border rounded"></textarea></div>
    <button type="submit" class="w-full bg-[#722F37] text-white p-3 rounded-lg font-bold">Submit</button>
  </form>
</section>

</main>
</div>

<nav class="fixed bottom-0 left-0 right-0 bg-[#722F37] text-white p-2 shadow-t-lg z-50">
  <div class="flex justify-around">
    <button class="text-center {{.NavClass "home"}}" onclick="showSection('home')"><i class="fas fa-home text-2xl"></i><span class="text-xs block">Home</span></button>
    <button class="text-center {{.NavClass "cart"}}" onclick="showSection('cart')"><i class="fas fa-shopping-cart text-2xl"></i><span class="text-xs block">Cart</span></button>
    <button class="text-center {{.NavClass "profile"}}" onclick="showSection('profile')"><i class="fas fa-user text-2xl"></i><span class="text-xs block">Profile</span></button>
  </div>
</nav>
<button class="fixed bottom-20 right-4 bg-black text-white w-12 h-12 rounded-full text-2xl shadow-lg z-40" onclick="showSection('contact')">?</button>

<script>
let cart = [];
const CART_KEY = 'pup_cart';
const SHIPPING_FEE = 36.00;

function showSection(sectionId) {
  document.querySelectorAll('.section').forEach(s => s.classList.remove('active'));
  const sectionToShow = document.getElementById(sectionId);
  if (sectionToShow) {
    sectionToShow.classList.add('active');
  } else {
    document.getElementById('home').classList.add('active');
  }
  document.querySelectorAll('.bottom-nav-item').forEach(b => {
    b.classList.add('inactive');
    b.classList.remove('active');
  });
  const activeNav = document.querySelector('button[onclick="showSection(\'' + sectionId + '\')"]');
  if (activeNav && activeNav.classList.contains('bottom-nav-item')) {
    activeNav.classList.remove('inactive');
    activeNav.classList.add('active');
  }
  if (sectionId === 'cart') updateCartDisplay();
  if (sectionId === 'checkout') updateCheckoutDisplay();
}

function loadCart() {
  try {
    cart = JSON.parse(localStorage.getItem(CART_KEY)) || [];
  } catch (e) {
    cart = [];
  }
  updateCartDisplay();
}

function saveCart() {
  localStorage.setItem(CART_KEY, JSON.stringify(cart));
}

function addToCart(id, name, price, image_url) {
  price = parseFloat(price);
  const existingItem = cart.find(item => item.id === id);
  if (existingItem) {
    existingItem.quantity++;
  } else {
    cart.push({ id, name, price, image_url, quantity: 1, selected: true });
  }
  saveCart();
  updateCartDisplay();
  showNotification(name + ' added to cart!');
}

function updateQuantity(id, change) {
  const item = cart.find(item => item.id === id);
  if (item) {
    item.quantity += change;
    if (item.quantity <= 0) {
      cart = cart.filter(i => i.id !== id);
    }
  }
  saveCart();
  updateCartDisplay();
}

function toggleItemSelection(id, checkbox) {
  const item = cart.find(item => item.id === id);
  if (item) item.selected = checkbox.checked;
  saveCart();
  updateCartDisplay();
}

function toggleSelectAll(checkbox) {
  cart.forEach(item => item.selected = checkbox.checked);
  saveCart();
  updateCartDisplay();
}

function deleteSelectedItems() {
  cart = cart.filter(item => !item.selected);
  saveCart();
  updateCartDisplay();
}

function selectedSubtotal() {
  return cart.filter(i => i.selected).reduce((sum, item) => sum + item.price * item.quantity, 0);
}

function updateCartDisplay() {
  const container = document.getElementById('cart-items-container');
  const subtotalEl = document.getElementById('cart-subtotal');
  if (!container || !subtotalEl) return;

  if (cart.length === 0) {
    container.innerHTML = '<div class="text-center text-gray-500 py-10"><i class="fas fa-shopping-cart text-4xl mb-2"></i><p>Your cart is empty.</p></div>';
    subtotalEl.textContent = '₱0.00';
    document.getElementById('select-all-cart').checked = false;
    return;
  }

  container.innerHTML = cart.map(item => [
    '<div class="flex items-center bg-white p-2 rounded-lg space-x-3">',
    '<input type="checkbox" class="cart-item-checkbox"', item.selected ? ' checked' : '',
    ' onchange="toggleItemSelection(' + item.id + ', this)">',
    '<img src="' + item.image_url + '" class="w-16 h-16 object-contain rounded-md">',
    '<div class="flex-grow"><p class="font-bold text-sm">' + item.name + '</p>',
    '<p class="text-red-500 font-bold">₱' + item.price.toFixed(2) + '</p></div>',
    '<div class="flex items-center space-x-2">',
    '<button onclick="updateQuantity(' + item.id + ', -1)" class="w-6 h-6 bg-gray-200 rounded-full">-</button>',
    '<span>' + item.quantity + '</span>',
    '<button onclick="updateQuantity(' + item.id + ', 1)" class="w-6 h-6 bg-gray-200 rounded-full">+</button>',
    '</div></div>'
  ].join('')).join('');

  subtotalEl.textContent = '₱' + selectedSubtotal().toFixed(2);
  document.getElementById('select-all-cart').checked = cart.length > 0 && cart.every(i => i.selected);
}

function updateCheckoutDisplay() {
  const subtotal = selectedSubtotal();
  const total = subtotal + SHIPPING_FEE;
  document.getElementById('checkout-subtotal').textContent = '₱' + subtotal.toFixed(2);
  document.getElementById('checkout-shipping').textContent = '₱' + SHIPPING_FEE.toFixed(2);
  document.getElementById('checkout-total').textContent = '₱' + total.toFixed(2);
}

function showNotification(message) {
  const notif = document.createElement('div');
  notif.className = 'fixed top-16 left-1/2 -translate-x-1/2 bg-green-500 text-white px-4 py-2 rounded-lg shadow-lg z-50';
  notif.textContent = message;
  document.body.appendChild(notif);
  setTimeout(() => { notif.remove(); }, 2000);
}

document.addEventListener('DOMContentLoaded', loadCart);
</script>
</body>
</html>
`
